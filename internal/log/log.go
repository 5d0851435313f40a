package log

import (
	"io"
	"log"
	"strings"
	"time"
)

// Date layout used when timestamps are enabled.
const logDate = `2006-01-02T15:04:05.000-07:00`

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

// ParseLevel maps a level name to a Level. ok is false for unknown names.
func ParseLevel(s string) (Level, bool) {
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

// LevelFromString is ParseLevel without the ok flag; unknown names map to INFO.
func LevelFromString(s string) Level {
	l, _ := ParseLevel(s)
	return l
}

// Logger writes levelled lines. Loggers derived with Tagged share the
// level and output of their parent.
type Logger struct {
	shared *shared
	tag    string
}

type shared struct {
	logger     *log.Logger
	level      Level
	timestamps bool
	now        func() time.Time
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{shared: &shared{
		logger: log.New(out, "", 0),
		level:  level,
		now:    time.Now,
	}}
}

// Discard returns a logger that drops everything.
func Discard() *Logger { return New(io.Discard, LevelNone) }

// Tagged returns a child logger that prefixes lines with "[TAG] ". A nil
// logger stays nil and logs nothing.
func (l *Logger) Tagged(tag string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{shared: l.shared, tag: tag}
}

// SetTimestamps toggles the leading timestamp on every line.
func (l *Logger) SetTimestamps(on bool) { l.shared.timestamps = on }

func (l *Logger) SetLevel(level Level) { l.shared.level = level }

func (l *Logger) Level() Level { return l.shared.level }

func (l *Logger) Enabled(level Level) bool {
	if l == nil {
		return false
	}
	return l.shared.level <= level && level != LevelNone
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.printf(LevelDebug, format, v) }

func (l *Logger) Infof(format string, v ...interface{}) { l.printf(LevelInfo, format, v) }

func (l *Logger) Warnf(format string, v ...interface{}) { l.printf(LevelWarn, format, v) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.printf(LevelError, format, v) }

func (l *Logger) printf(level Level, format string, v []interface{}) {
	if !l.Enabled(level) {
		return
	}
	var b strings.Builder
	if l.shared.timestamps {
		b.WriteString(l.shared.now().Format(logDate))
		b.WriteString(" | ")
	}
	b.WriteString(level.String())
	b.WriteString(": ")
	if l.tag != "" {
		b.WriteString("[")
		b.WriteString(l.tag)
		b.WriteString("] ")
	}
	b.WriteString(format)
	l.shared.logger.Printf(b.String(), v...)
}
