package logger

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var setTimeFormat sync.Once

// New returns a logger writing to w. It is safe for concurrent use.
//
// Levels: debug|info|warn|error (default: info). When pretty is true the
// output is human-readable instead of JSON.
func New(w io.Writer, level string, pretty bool) zerolog.Logger {
	setTimeFormat.Do(func() { zerolog.TimeFieldFormat = time.RFC3339Nano })
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level))
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
