package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Logger writes structured logs to a file so they never bleed into the
// selector UI or the printed file list.
type Logger struct {
	mu     sync.Mutex
	level  LogLevel
	output io.Writer
	stats  *ErrorStats
	file   *os.File
	logger *slog.Logger
}

// ErrorStats tracks error statistics for the end-of-run report.
type ErrorStats struct {
	mu            sync.Mutex
	TotalErrors   int
	TotalWarnings int
	LastError     string
	LastErrorTime time.Time
}

const logFileName = "diff_pick.log"

// NewLogger creates a logger writing to /tmp/diff_pick.log, falling back to
// the repository root. If both fail it logs to stderr and returns an error
// alongside the still-usable logger.
func NewLogger(level LogLevel, gitRootPath string) (*Logger, error) {
	logger := &Logger{
		level:  level,
		output: os.Stderr,
		stats:  &ErrorStats{},
	}
	logger.rebuildSlogLocked()

	pathsTried := []string{filepath.Join(os.TempDir(), logFileName)}
	file, err := openLogFile(pathsTried[0])
	if err != nil && gitRootPath != "" {
		fallback := filepath.Join(gitRootPath, logFileName)
		pathsTried = append(pathsTried, fallback)
		file, err = openLogFile(fallback)
	}
	if err != nil {
		return logger, fmt.Errorf("open log file (tried %s): %w", strings.Join(pathsTried, ", "), err)
	}

	logger.output = file
	logger.file = file
	logger.rebuildSlogLocked()
	return logger, nil
}

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func (l *Logger) rebuildSlogLocked() {
	l.logger = slog.New(slog.NewTextHandler(l.output, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// SetOutput redirects log output, for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.rebuildSlogLocked()
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]any) {
	l.log(DEBUG, msg, nil, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]any) {
	l.log(INFO, msg, nil, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]any) {
	l.log(WARN, msg, nil, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, fields map[string]any) {
	l.log(ERROR, msg, err, fields)
}

func (l *Logger) log(level LogLevel, msg string, err error, fields map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	l.updateStats(level, msg, err)

	args := make([]any, 0, len(fields)*2+2)
	if err != nil {
		args = append(args, "error", err)
	}
	for _, key := range sortedFieldKeys(fields) {
		args = append(args, key, fields[key])
	}

	l.logger.Log(context.Background(), toSlogLevel(level), msg, args...)
}

func (l *Logger) updateStats(level LogLevel, msg string, err error) {
	l.stats.mu.Lock()
	defer l.stats.mu.Unlock()

	switch {
	case level >= ERROR:
		l.stats.TotalErrors++
		l.stats.LastError = msg
		if err != nil {
			l.stats.LastError += ": " + err.Error()
		}
		l.stats.LastErrorTime = time.Now()
	case level == WARN:
		l.stats.TotalWarnings++
	}
}

func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// HasErrors reports whether any errors were logged during the run.
func (l *Logger) HasErrors() bool {
	l.stats.mu.Lock()
	defer l.stats.mu.Unlock()
	return l.stats.TotalErrors > 0
}

// GetStats returns a copy of the error statistics.
func (l *Logger) GetStats() ErrorStats {
	l.stats.mu.Lock()
	defer l.stats.mu.Unlock()
	return ErrorStats{
		TotalErrors:   l.stats.TotalErrors,
		TotalWarnings: l.stats.TotalWarnings,
		LastError:     l.stats.LastError,
		LastErrorTime: l.stats.LastErrorTime,
	}
}

// Close closes the log file if one is open.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
