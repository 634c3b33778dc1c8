package logx

import (
	"fmt"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewLogger(LoadFromEnv()))
}

// SetDefaultLogger replaces the process-wide logger
func SetDefaultLogger(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// GetDefaultLogger returns the process-wide logger
func GetDefaultLogger() *Logger {
	return defaultLogger.Load()
}

// SetLevel sets the level of the default logger
func SetLevel(level Level) {
	GetDefaultLogger().SetLevel(level)
}

// ============================================================================
// Simple Logging Functions
// ============================================================================

// Debug logs a debug level message
func Debug(msg string) { GetDefaultLogger().log(LevelDebug, msg, nil, nil) }

// Info logs an info level message
func Info(msg string) { GetDefaultLogger().log(LevelInfo, msg, nil, nil) }

// Warn logs a warning level message
func Warn(msg string) { GetDefaultLogger().log(LevelWarn, msg, nil, nil) }

// Error logs an error level message
func Error(msg string) { GetDefaultLogger().log(LevelError, msg, nil, nil) }

// ============================================================================
// Formatted Logging Functions
// ============================================================================

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	GetDefaultLogger().log(LevelDebug, fmt.Sprintf(format, args...), nil, nil)
}

// Infof logs a formatted info message
func Infof(format string, args ...interface{}) {
	GetDefaultLogger().log(LevelInfo, fmt.Sprintf(format, args...), nil, nil)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	GetDefaultLogger().log(LevelWarn, fmt.Sprintf(format, args...), nil, nil)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	GetDefaultLogger().log(LevelError, fmt.Sprintf(format, args...), nil, nil)
}

// Fatalf logs a formatted fatal message and exits
func Fatalf(format string, args ...interface{}) {
	l := GetDefaultLogger()
	l.log(LevelFatal, fmt.Sprintf(format, args...), nil, nil)
	l.exit(1)
}

// ============================================================================
// Structured Logging
// ============================================================================

// WithFields creates a new entry with fields on the default logger
func WithFields(fields Fields) *Entry {
	return GetDefaultLogger().WithFields(fields)
}

// WithField creates a new entry with a single field on the default logger
func WithField(key string, value interface{}) *Entry {
	return GetDefaultLogger().WithField(key, value)
}

// WithError creates a new entry with an error on the default logger
func WithError(err error) *Entry {
	return GetDefaultLogger().WithError(err)
}
