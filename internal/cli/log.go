package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamp formatting writing to w and
// filtering at level. Timestamps look like "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation together with its elapsed time.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the microsecond, plus any
// extra key/value pairs.
func (p *progress) done(msg string, keyvals ...any) {
	kv := append([]any{"elapsed", time.Since(p.start).Round(time.Microsecond)}, keyvals...)
	p.logger.Info(msg, kv...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
