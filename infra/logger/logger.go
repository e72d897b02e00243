package logger

import (
	corelogger "github.com/kilianp07/routeplan/core/logger"
)

// Logger is re-exported for convenience.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns the default logger implementation for the given component.
func New(component string) Logger {
	return NewZerologLogger(component)
}
