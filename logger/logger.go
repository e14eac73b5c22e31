// Package logger builds the zerolog loggers used for diagnostics.
//
// Diagnostics always go to standard error, standard output carries the
// converted file.
package logger

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options selects the logger format and level.
type Options struct {
	Verbose bool // log at debug level
	JSON    bool // one JSON object per line instead of the console format
}

// New creates a logger writing to w.
//
// Every entry carries a "run" field, unique to the logger, so that entries of
// concurrent runs can be told apart.
func New(w io.Writer, opts Options) zerolog.Logger {
	out := w
	if !opts.JSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("run", uuid.NewString()).Logger()
}
