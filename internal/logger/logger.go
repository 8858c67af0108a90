package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing one object per line to w.
// Every event carries a "ts" field formatted as RFC3339Nano in loc.
func New(w io.Writer, loc *time.Location) zerolog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	return zerolog.New(w).Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
		e.Str("ts", time.Now().In(loc).Format(time.RFC3339Nano))
	}))
}

// Stdout is New(os.Stdout, loc).
func Stdout(loc *time.Location) zerolog.Logger {
	return New(os.Stdout, loc)
}
