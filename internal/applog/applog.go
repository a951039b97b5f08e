// Package applog is a thin wrapper around zerolog configuring the
// ambient operational logger used by the CLI harness. It is kept separate from
// internal/sched.Tracer, which owns the byte-exact debug trace contract
// and never touches a logging framework.
package applog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger exposes the leveled methods the CLI harness needs, so callers
// never import zerolog directly.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger writing to w. In debug mode it uses zerolog's
// human-readable console writer; otherwise it emits structured JSON,
// suitable for piping into a log aggregator.
func New(w io.Writer, debug bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	var out io.Writer = w
	if debug {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(out).With().Timestamp().Logger()
	if debug {
		z = z.Level(zerolog.DebugLevel)
	} else {
		z = z.Level(zerolog.InfoLevel)
	}
	return &Logger{z: z}
}

func (l *Logger) Info(msg string, kv ...any)  { l.event(l.z.Info(), msg, kv) }
func (l *Logger) Warn(msg string, kv ...any)  { l.event(l.z.Warn(), msg, kv) }
func (l *Logger) Error(msg string, kv ...any) { l.event(l.z.Error(), msg, kv) }
func (l *Logger) Fatal(msg string, kv ...any) { l.event(l.z.Error(), msg, kv); os.Exit(1) }

// event attaches kv as alternating key/value pairs and sends msg. Odd
// trailing keys without a value are dropped.
func (l *Logger) event(e *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	e.Msg(msg)
}
