// Package config loads the optional pipemaze.toml file. Every field has a
// default, so a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values for Config.
const (
	DefaultInput    = "input.txt"
	DefaultLogLevel = "info"
	DefaultAxis     = "rows"

	// DefaultPath is the config file looked up in the working directory.
	DefaultPath = "pipemaze.toml"
	// PathEnv overrides DefaultPath.
	PathEnv = "PIPEMAZE_CONFIG"
)

var (
	logLevels = []string{"debug", "info", "warn", "error"}
	axes      = []string{"rows", "columns"}
)

// Config is the contents of pipemaze.toml.
type Config struct {
	// Input is the maze file to solve.
	Input string `toml:"input"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// MaxSteps bounds the loop walk; 0 means the grid size.
	MaxSteps int `toml:"max_steps"`
	// Axis is the interior scan direction: rows or columns.
	Axis string `toml:"axis"`
	// Render draws the solved maze to stderr.
	Render bool `toml:"render"`
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		Input:    DefaultInput,
		LogLevel: DefaultLogLevel,
		Axis:     DefaultAxis,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Path returns the config file location: $PIPEMAZE_CONFIG if set,
// DefaultPath otherwise.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the TOML file at path on top of Default.
// If the file doesn't exist, returns the default config.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, ValidationError{
			Field:   undecoded[0].String(),
			Message: "unknown key",
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return ValidationError{Field: "input", Message: "must not be empty"}
	}
	if !oneOf(c.LogLevel, logLevels) {
		return ValidationError{Field: "log_level", Message: "must be one of " + strings.Join(logLevels, ", ")}
	}
	if c.MaxSteps < 0 {
		return ValidationError{Field: "max_steps", Message: "must not be negative"}
	}
	if !oneOf(c.Axis, axes) {
		return ValidationError{Field: "axis", Message: "must be one of " + strings.Join(axes, ", ")}
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
