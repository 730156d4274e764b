// Package log is a small leveled logger. The level tag is part of the
// line, so the underlying stdlib logger has no prefix or flags.
package log

import (
	"io"
	"log"
	"strings"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name case-insensitively. The second
// result is false for unknown names, which map to LevelInfo.
func LevelFromString(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, true
	case "INFO":
		return LevelInfo, true
	case "WARN", "WARNING":
		return LevelWarn, true
	case "ERROR":
		return LevelError, true
	case "NONE", "OFF":
		return LevelNone, true
	default:
		return LevelInfo, false
	}
}

type Logger struct {
	logger *log.Logger
	level  Level
	now    func() time.Time
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", 0),
		level:  level,
		now:    time.Now,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

func (l *Logger) printf(level Level, format string, v ...interface{}) {
	if l.level > level {
		return
	}
	stamp := l.now().Format("15:04:05.000")
	l.logger.Printf(stamp+" "+level.String()+": "+format, v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.printf(LevelDebug, format, v...) }

func (l *Logger) Infof(format string, v ...interface{}) { l.printf(LevelInfo, format, v...) }

func (l *Logger) Warnf(format string, v ...interface{}) { l.printf(LevelWarn, format, v...) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.printf(LevelError, format, v...) }

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Level() Level {
	return l.level
}
