// ==============================================================================
// LOGGER PACKAGE - pkg/logger/logger.go
// ==============================================================================
package logger

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

type Logger interface {
	Info(message string, fields map[string]interface{})
	Error(message string, fields map[string]interface{})
	Warn(message string, fields map[string]interface{})
	Debug(message string, fields map[string]interface{})
	Fatal(message string, fields map[string]interface{})
}

// Level orders log entries by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "info"
	}
}

// ParseLevel maps a level name to a Level. Unknown names fall back to info.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

type jsonLogger struct {
	serviceName string
	minLevel    Level
	logger      *log.Logger
	now         func() time.Time
	exit        func(int)
}

// New returns a JSON logger writing to stdout at info level.
func New(serviceName string) Logger {
	return NewWithWriter(serviceName, os.Stdout, LevelInfo)
}

// NewWithWriter returns a JSON logger writing entries at or above minLevel to w.
func NewWithWriter(serviceName string, w io.Writer, minLevel Level) Logger {
	return &jsonLogger{
		serviceName: serviceName,
		minLevel:    minLevel,
		logger:      log.New(w, "", 0),
		now:         time.Now,
		exit:        os.Exit,
	}
}

func (l *jsonLogger) log(level Level, message string, fields map[string]interface{}) {
	if level < l.minLevel {
		return
	}

	entry := map[string]interface{}{
		"timestamp": l.now().UTC().Format(time.RFC3339),
		"level":     level.String(),
		"service":   l.serviceName,
		"message":   message,
	}

	for k, v := range fields {
		if _, reserved := entry[k]; reserved {
			k = "field_" + k
		}
		entry[k] = v
	}

	jsonData, err := json.Marshal(entry)
	if err != nil {
		jsonData, _ = json.Marshal(map[string]interface{}{
			"timestamp": entry["timestamp"],
			"level":     entry["level"],
			"service":   l.serviceName,
			"message":   message,
			"log_error": err.Error(),
		})
	}
	l.logger.Println(string(jsonData))
}

func (l *jsonLogger) Info(message string, fields map[string]interface{}) {
	l.log(LevelInfo, message, fields)
}

func (l *jsonLogger) Error(message string, fields map[string]interface{}) {
	l.log(LevelError, message, fields)
}

func (l *jsonLogger) Warn(message string, fields map[string]interface{}) {
	l.log(LevelWarn, message, fields)
}

func (l *jsonLogger) Debug(message string, fields map[string]interface{}) {
	l.log(LevelDebug, message, fields)
}

func (l *jsonLogger) Fatal(message string, fields map[string]interface{}) {
	l.log(LevelFatal, message, fields)
	l.exit(1)
}

func NewNop() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

func (l *nopLogger) Info(message string, fields map[string]interface{})  {}
func (l *nopLogger) Error(message string, fields map[string]interface{}) {}
func (l *nopLogger) Warn(message string, fields map[string]interface{})  {}
func (l *nopLogger) Debug(message string, fields map[string]interface{}) {}
func (l *nopLogger) Fatal(message string, fields map[string]interface{}) {}
