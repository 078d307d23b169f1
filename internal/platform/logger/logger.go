// Package logger provides the application logger backed by zerolog.
//
// Both front ends render to the terminal, so logs always go to a file
// under the state directory rather than stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum log level: debug, info, warn, error.
	// Defaults to "info" when empty or unrecognised.
	Level string
	// Dir is the state directory; the log file is created at
	// <Dir>/logs/fittrack.log.
	Dir string
	// Output overrides the file destination. Intended for tests.
	Output io.Writer
}

// New builds a logger per Options. The returned closer is nil when no
// file was opened.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	out := opts.Output
	var closer io.Closer
	if out == nil {
		logDir := filepath.Join(opts.Dir, "logs")
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(filepath.Join(logDir, "fittrack.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
		closer = file
	}

	log := zerolog.New(out).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()
	return log, closer, nil
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
