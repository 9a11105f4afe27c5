package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// DefaultLogger is used when the context carries no logger.
var DefaultLogger = newDefault()

func newDefault() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.JSONFormatter{})
	return logrus.NewEntry(l)
}

// FromContext returns the request-scoped logger or DefaultLogger.
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok && l != nil {
			return l
		}
	}
	return DefaultLogger
}

func WithLogger(ctx context.Context, l *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// SetLevel changes the level of DefaultLogger. Unknown levels fall back to info.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		DefaultLogger.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	DefaultLogger.Logger.SetLevel(lvl)
}
