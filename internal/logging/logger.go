// Package logging builds the hclog loggers used by the uvoxid command.
//
// Library packages never log; they return errors.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// NewLogger creates a new hclog logger with standard settings.
//
// Timestamps are UTC in ISO format. A nil output writes to stderr, and an
// unknown level falls back to DefaultLevel.
func NewLogger(name string, level string, jsonFormat bool, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.LevelFromString(DefaultLevel)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      lvl,
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}
