package rabbitsearch

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger is the diagnostic sink collaborator. The core never treats a
// logged diagnostic as an error to propagate: per-entry and per-file
// failures are always logged and then skipped (see errors.go).
//
// Logger is intentionally a narrow, printf-shaped interface rather than a
// concrete logging type, so that a driver embedding this package can route
// diagnostics through whatever logging stack it already uses.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards every diagnostic. It is the zero-value-friendly
// default: an [Options] with no [WithLogger] uses NopLogger.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// slogLogger adapts a *slog.Logger to the Logger interface.
type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger returns a Logger backed by log/slog. A nil handler writes
// text-formatted logs to stderr, matching the CLI's default.
func NewSlogLogger(handler slog.Handler) Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}

	return slogLogger{l: slog.New(handler)}
}

func (s slogLogger) Debugf(format string, args ...any) { s.l.Debug(fmt.Sprintf(format, args...)) }
func (s slogLogger) Infof(format string, args ...any)  { s.l.Info(fmt.Sprintf(format, args...)) }
func (s slogLogger) Warnf(format string, args ...any)  { s.l.Warn(fmt.Sprintf(format, args...)) }
func (s slogLogger) Errorf(format string, args ...any) { s.l.Error(fmt.Sprintf(format, args...)) }
