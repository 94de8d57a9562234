// Package logger provides the leveled console logger used by the CLI layer.
// Output is timestamped, thread-safe, and colored when writing to a TTY.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs progress to a writer with [HH:MM:SS] timestamps and
// level filtering. Color output is enabled automatically when the writer is
// a TTY and NO_COLOR is unset.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger writing to w. A nil writer
// silently discards messages. Valid levels are trace, debug, info, warn,
// error (case-insensitive); empty or invalid defaults to "info".
func NewConsoleLogger(w io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(w),
	}
}

// isTerminal reports whether the writer is a TTY that supports colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel lowercases and validates a level, defaulting to "info".
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// Tracef logs a trace-level message (most verbose).
func (cl *ConsoleLogger) Tracef(format string, args ...any) {
	cl.logWithLevel("TRACE", fmt.Sprintf(format, args...))
}

// Debugf logs a debug-level message.
func (cl *ConsoleLogger) Debugf(format string, args ...any) {
	cl.logWithLevel("DEBUG", fmt.Sprintf(format, args...))
}

// Infof logs an info-level message.
func (cl *ConsoleLogger) Infof(format string, args ...any) {
	cl.logWithLevel("INFO", fmt.Sprintf(format, args...))
}

// Warnf logs a warning-level message.
func (cl *ConsoleLogger) Warnf(format string, args ...any) {
	cl.logWithLevel("WARN", fmt.Sprintf(format, args...))
}

// Errorf logs an error-level message.
func (cl *ConsoleLogger) Errorf(format string, args ...any) {
	cl.logWithLevel("ERROR", fmt.Sprintf(format, args...))
}

func (cl *ConsoleLogger) logWithLevel(level, message string) {
	if cl.writer == nil || !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := time.Now().Format("15:04:05")
	if cl.colorOutput {
		fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, colorLevel(level), message)
		return
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, level, message)
}

func colorLevel(level string) string {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgGreen).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	}
	return level
}
