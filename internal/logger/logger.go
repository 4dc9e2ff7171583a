// Package logger provides leveled logging over the standard log package.
// The TUI keeps the terminal to itself, so output goes to stderr and
// defaults to warn level; CLI commands raise it via config.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var std = &Logger{
	level:  WarnLevel,
	logger: log.New(os.Stderr, "", log.LstdFlags),
}

// Logger filters messages below its level.
type Logger struct {
	level  Level
	logger *log.Logger
}

// Init sets the level of the package logger. Unknown names fall back to
// warn.
func Init(level string) {
	std.level = ParseLevel(level)
}

// ParseLevel maps a level name to a Level.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return WarnLevel
	}
}

func Debug(format string, args ...any) { std.log(DebugLevel, "[DEBUG] ", format, args...) }
func Info(format string, args ...any)  { std.log(InfoLevel, "[INFO] ", format, args...) }
func Warn(format string, args ...any)  { std.log(WarnLevel, "[WARN] ", format, args...) }
func Error(format string, args ...any) { std.log(ErrorLevel, "[ERROR] ", format, args...) }

func (l *Logger) log(level Level, prefix, format string, args ...any) {
	if l.level > level {
		return
	}
	_ = l.logger.Output(3, prefix+fmt.Sprintf(format, args...))
}
