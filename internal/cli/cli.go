// Package cli implements the pipemaze command-line interface.
//
// The single root command reads a maze, prints the two answers to stdout
// (loop half-length, then enclosed cell count) and logs progress to stderr
// via charmbracelet/log. Settings come from the optional pipemaze.toml
// (see internal/config); the only argument is an optional input path.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// appName is the command name used for display.
const appName = "pipemaze"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the root command.
type CLI struct {
	Logger *log.Logger

	// configPath locates the config file; tests point it at a temp dir.
	configPath func() string
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:     newLogger(w, level),
		configPath: defaultConfigPath,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// parseLevel maps a config log level name to a log.Level.
func parseLevel(name string) (log.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}
