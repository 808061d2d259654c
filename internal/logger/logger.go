// Package logger provides the zerolog-backed diagnostics sink.
package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"plaindoc/internal/port"
)

type zerologSink struct {
	log zerolog.Logger
}

// New builds a port.Logger writing to w at the given level. When format is
// "console" the output is human-readable; anything else emits JSON lines.
func New(w io.Writer, level, format string) port.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return &zerologSink{
		log: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}
}

func (l *zerologSink) Error(msg string, fields map[string]any) {
	ev := l.log.Error()
	for k, v := range fields {
		if err, ok := v.(error); ok {
			ev = ev.AnErr(k, err)
			continue
		}
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
