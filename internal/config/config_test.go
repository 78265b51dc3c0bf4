package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
input = "maze.txt"
log_level = "debug"
max_steps = 500
axis = "columns"
render = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Config{
		Input:    "maze.txt",
		LogLevel: "debug",
		MaxSteps: 500,
		Axis:     "columns",
		Render:   true,
	}, cfg)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "render = true\n"))
	require.NoError(t, err)
	require.True(t, cfg.Render)
	require.Equal(t, DefaultInput, cfg.Input)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.Equal(t, DefaultAxis, cfg.Axis)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"empty input", `input = ""`, "input"},
		{"bad level", `log_level = "loud"`, "log_level"},
		{"negative steps", `max_steps = -1`, "max_steps"},
		{"bad axis", `axis = "diagonal"`, "axis"},
		{"unknown key", `colour = "red"`, "colour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			var verr ValidationError
			require.True(t, errors.As(err, &verr), "error %v", err)
			require.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "input = \n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config:")
}

func TestPath(t *testing.T) {
	t.Setenv(PathEnv, "")
	require.Equal(t, DefaultPath, Path())

	t.Setenv(PathEnv, "/etc/pipemaze.toml")
	require.Equal(t, "/etc/pipemaze.toml", Path())
}
