package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CheckedEntry is an Entry together with the cores that agreed to log it.
type CheckedEntry = zapcore.CheckedEntry

// SugaredLogger is the loosely typed, printf friendly flavour of Logger.
type SugaredLogger = zap.SugaredLogger

// Logger is the interface that wraps methods needed for a valid logger implementation.
type Logger interface {
	// Check returns a CheckedEntry if logging a message at the specified level
	// is enabled.
	Check(lvl Level, msg string) *CheckedEntry

	// Named adds a new path segment to the logger's name. Segments are joined by
	// periods.
	Named(s string) Logger

	Sugar() *SugaredLogger

	// With creates a child logger and adds structured context to it. Fields added
	// to the child don't affect the parent, and vice versa.
	With(fields ...Field) Logger

	// WithLevel creates a child logger that logs on the given level.
	WithLevel(lvl Level) Logger

	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// Level reports the minimum enabled level for this logger.
	Level() Level
}
