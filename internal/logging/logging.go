// Package logging wraps zerolog with the small console logger the aockit
// commands share. Diagnostics go to stderr; answers and descriptions are
// printed to stdout by the callers themselves.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog for structured logging.
type Logger struct {
	z zerolog.Logger
}

// New creates a logger with console output on stderr. Color is disabled when
// NO_COLOR is set or stderr is not a terminal.
func New() *Logger {
	noColor := os.Getenv("NO_COLOR") != ""
	if fi, err := os.Stderr.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		noColor = true
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	zl := zerolog.New(out).With().Timestamp().Logger()
	return &Logger{z: zl}
}

// NewWriter creates a logger writing to w, without color. Used by tests.
func NewWriter(w io.Writer) *Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return &Logger{z: zerolog.New(out).With().Timestamp().Logger()}
}

func (l *Logger) Info(msg string) { l.z.Info().Msg(msg) }
func (l *Logger) Warn(msg string) { l.z.Warn().Msg(msg) }
func (l *Logger) Ok(msg string)   { l.z.Info().Msg(msg) }
func (l *Logger) Err(msg string)  { l.z.Error().Msg(msg) }

func (l *Logger) Infof(format string, args ...any) { l.Info(fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...any) { l.Warn(fmt.Sprintf(format, args...)) }
func (l *Logger) Okf(format string, args ...any)   { l.Ok(fmt.Sprintf(format, args...)) }
