package internal

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// LogLevel represents different logging verbosity levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var logLevelNames = map[string]LogLevel{
	"ERROR": LogLevelError,
	"WARN":  LogLevelWarn,
	"INFO":  LogLevelInfo,
	"DEBUG": LogLevelDebug,
}

// ParseLogLevel maps a LOG_LEVEL value to a level, ignoring case
func ParseLogLevel(value string) (LogLevel, bool) {
	level, ok := logLevelNames[strings.ToUpper(strings.TrimSpace(value))]
	return level, ok
}

// Logger writes leveled lines tagged with the component that emitted them
type Logger struct {
	level     LogLevel
	component string
}

// NewLogger creates a component logger with an explicit level
func NewLogger(level LogLevel, component string) *Logger {
	return &Logger{level: level, component: component}
}

// NewDefaultLogger creates a component logger whose level comes from LOG_LEVEL.
// Unset or unknown values mean INFO.
func NewDefaultLogger(component string) *Logger {
	level := LogLevelInfo
	if parsed, ok := ParseLogLevel(os.Getenv("LOG_LEVEL")); ok {
		level = parsed
	}
	return NewLogger(level, component)
}

// Enabled reports whether messages at level would be written
func (l *Logger) Enabled(level LogLevel) bool {
	return l.level >= level
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogLevelError, "ERROR", format, args...)
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LogLevelWarn, "WARN", format, args...)
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogLevelInfo, "INFO", format, args...)
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogLevelDebug, "DEBUG", format, args...)
}

func (l *Logger) logf(level LogLevel, tag, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	log.Printf("[%s] [%s] %s", tag, l.component, fmt.Sprintf(format, args...))
}
