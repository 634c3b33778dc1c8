package logx

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Fields is a map of structured data
type Fields map[string]interface{}

// Logger is a leveled, structured logger backed by zerolog.
type Logger struct {
	mu    sync.RWMutex
	zl    zerolog.Logger
	level Level
	exit  func(int)
}

// NewLogger creates a logger from config. A nil config means DefaultConfig.
func NewLogger(config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	if config.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: config.TimeFormat,
			NoColor:    !config.EnableColors,
		}
	}

	return &Logger{
		zl:    zerolog.New(out).With().Timestamp().Logger(),
		level: config.Level,
		exit:  os.Exit,
	}
}

// NewWriterLogger creates a JSON logger that writes to w. Handy in tests.
func NewWriterLogger(w io.Writer, level Level) *Logger {
	return NewLogger(&Config{
		Level:      level,
		Format:     FormatJSON,
		TimeFormat: time.RFC3339,
		Output:     w,
	})
}

// SetLevel changes the minimum level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// GetLevel returns the minimum level
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// WithFields creates a new entry with fields
func (l *Logger) WithFields(fields Fields) *Entry {
	return newEntry(l).WithFields(fields)
}

// WithField creates a new entry with a single field
func (l *Logger) WithField(key string, value interface{}) *Entry {
	return newEntry(l).WithField(key, value)
}

// WithError creates a new entry with an error attached
func (l *Logger) WithError(err error) *Entry {
	return newEntry(l).WithError(err)
}

// Info logs an info level message
func (l *Logger) Info(msg string) {
	l.log(LevelInfo, msg, nil, nil)
}

// Debug logs a debug level message
func (l *Logger) Debug(msg string) {
	l.log(LevelDebug, msg, nil, nil)
}

// Warn logs a warning level message
func (l *Logger) Warn(msg string) {
	l.log(LevelWarn, msg, nil, nil)
}

// Error logs an error level message
func (l *Logger) Error(msg string) {
	l.log(LevelError, msg, nil, nil)
}

func (l *Logger) log(level Level, msg string, fields Fields, err error) {
	if level == LevelOff || level < l.GetLevel() {
		return
	}

	evt := l.zl.WithLevel(level.zerolog())
	if evt == nil {
		return
	}
	if len(fields) > 0 {
		evt = evt.Fields(map[string]interface{}(fields))
	}
	if err != nil {
		evt = evt.Err(err)
	}
	evt.Msg(msg)
}
