// Package logging constructs the zerolog logger used by the CLI for
// diagnostic output on stderr.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr. Verbose enables debug
// level; otherwise only warnings and errors are emitted so machine-read
// stdout stays clean.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards all output. Intended for tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
