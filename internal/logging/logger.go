// =============================================================================
// Dataset Report Tools - Logging Module
// =============================================================================
//
// Leveled console logger with an optional file sink. Per-record data errors
// stream through Warn as they are discovered so issues are visible before the
// final report is written; ERROR lines go to stderr.
//
// =============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ginjaninja78/dataset-report-tools/pkg/utils"
)

// Level is a log severity.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLevel maps a config string to a Level. Unknown strings map to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger writes timestamped leveled lines to the console and, when configured,
// to an append-mode log file.
type Logger struct {
	mu    sync.Mutex
	level Level
	file  *os.File
}

// New creates a Logger at the given level. When logFile is non-empty its
// parent directory is created and every line is duplicated into it. Call
// Close when done if a file was configured.
func New(level Level, logFile string) (*Logger, error) {
	l := &Logger{level: level}

	if logFile != "" {
		if err := utils.EnsureDir(filepath.Dir(logFile)); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(lv Level, tag, text string) {
	if lv < l.level {
		return
	}
	out := os.Stdout
	if lv == ErrorLevel {
		out = os.Stderr
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	msg := ts + " [" + tag + "] " + text + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(out, msg)
	if l.file != nil {
		_, _ = io.WriteString(l.file, msg)
	}
}

// Debug logs at DEBUG level.
func (l *Logger) Debug(format string, args ...any) {
	l.line(DebugLevel, "DEBUG", fmt.Sprintf(format, args...))
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...any) {
	l.line(InfoLevel, "INFO", fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...any) {
	l.line(WarnLevel, "WARN", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...any) {
	l.line(ErrorLevel, "ERROR", fmt.Sprintf(format, args...))
}
