// Package cli implements the scrgen command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scrgen/pkg/errors"
	"github.com/matzehuels/scrgen/pkg/generator"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "scrgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	Generators *generator.Registry
}

// New creates a new CLI instance with a default logger and the built-in generators.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:     newLogger(w, level),
		Generators: generator.Default,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Error Output
// =============================================================================

// FormatError renders err for the terminal. Build failures print their
// location (when known) and message, followed by the cause.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var e *errors.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := errors.UserMessage(e)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// PrintError writes err to w as a status line.
func PrintError(w io.Writer, err error) {
	printError(w, "%s", FormatError(err))
}
