// Package logger provides a small leveled key/value logger.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

type Logger struct {
	level  Level
	logger *log.Logger
	fields map[string]interface{}
}

// New creates a logger at INFO writing to stderr.
func New() *Logger {
	return NewWithOutput(INFO, os.Stderr)
}

// NewWithOutput creates a logger with an explicit level and destination.
func NewWithOutput(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level:  level,
		logger: log.New(out, "", 0),
		fields: make(map[string]interface{}),
	}
}

// WithField returns a logger carrying one additional context field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(key, value)
}

// WithFields returns a logger carrying additional context fields, given as
// alternating keys and values.
func (l *Logger) WithFields(keyVals ...interface{}) *Logger {
	nl := &Logger{
		level:  l.level,
		logger: l.logger,
		fields: make(map[string]interface{}, len(l.fields)+len(keyVals)/2),
	}
	for k, v := range l.fields {
		nl.fields[k] = v
	}
	for i := 0; i+1 < len(keyVals); i += 2 {
		nl.fields[fmt.Sprintf("%v", keyVals[i])] = keyVals[i+1]
	}
	return nl
}

func (l *Logger) Debug(msg string, keyVals ...interface{}) { l.log(DEBUG, msg, keyVals...) }
func (l *Logger) Info(msg string, keyVals ...interface{})  { l.log(INFO, msg, keyVals...) }
func (l *Logger) Warn(msg string, keyVals ...interface{})  { l.log(WARN, msg, keyVals...) }
func (l *Logger) Error(msg string, keyVals ...interface{}) { l.log(ERROR, msg, keyVals...) }

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) log(level Level, msg string, keyVals ...interface{}) {
	if level < l.level {
		return
	}

	parts := []string{
		fmt.Sprintf("[%s]", time.Now().Format("2006-01-02T15:04:05.000Z07:00")),
		fmt.Sprintf("[%s]", level),
		msg,
	}

	if len(l.fields) > 0 || len(keyVals) > 0 {
		var kv []string
		for k, v := range l.fields {
			kv = append(kv, fmt.Sprintf("%s=%v", k, formatValue(v)))
		}
		for i := 0; i+1 < len(keyVals); i += 2 {
			kv = append(kv, fmt.Sprintf("%v=%v", keyVals[i], formatValue(keyVals[i+1])))
		}
		if len(kv) > 0 {
			parts = append(parts, "| "+strings.Join(kv, " "))
		}
	}

	l.logger.Print(strings.Join(parts, " "))
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		if strings.Contains(v, " ") {
			return fmt.Sprintf("%q", v)
		}
		return v
	case error:
		return fmt.Sprintf("%q", v.Error())
	case time.Duration:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// package-level default logger for convenience
var defaultLogger = New()

func Debug(msg string, keyVals ...interface{}) { defaultLogger.Debug(msg, keyVals...) }
func Info(msg string, keyVals ...interface{})  { defaultLogger.Info(msg, keyVals...) }
func Warn(msg string, keyVals ...interface{})  { defaultLogger.Warn(msg, keyVals...) }
func Error(msg string, keyVals ...interface{}) { defaultLogger.Error(msg, keyVals...) }

func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}
