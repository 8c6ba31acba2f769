package generate

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
)

// ctxKey is the type of context keys defined by this package.
type ctxKey int

const loggerKey ctxKey = 0

// WithContextLogger returns a context carrying l. Calls made with that
// context log to l instead of the generator's logger.
func WithContextLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context, fallback *log.Logger) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok && l != nil {
		return l
	}
	return fallback
}

// newLogger returns the default logger: info level on stderr with
// timestamps formatted as "HH:MM:SS.ms".
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.InfoLevel,
		Prefix:          "barnode",
	})
}
