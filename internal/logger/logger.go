// Package logger holds the plugin-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging to a file.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	logPrefix            = "xp_ini-"
	logSuffix            = ".log"
	defaultRetentionDays = 30
)

var (
	mu   sync.Mutex
	file *os.File
)

// Options configures the logger initialization.
type Options struct {
	Enabled       bool       // If false, all logging is discarded
	LogDir        string     // Directory for log files. Required when Enabled.
	Level         slog.Level // Minimum log level. Default: LevelInfo
	RetentionDays int        // Log files older than this are removed. Default: 30
}

// Init configures logging. Call once from the host shim before any log calls.
// If opts.Enabled is false, all log output is discarded.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()

	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
		return err
	}

	retention := opts.RetentionDays
	if retention <= 0 {
		retention = defaultRetentionDays
	}
	// Clean up old logs (best-effort, ignore errors)
	cleanOldLogs(opts.LogDir, retention, time.Now())

	filename := filepath.Join(opts.LogDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	file = f

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// Close flushes and closes the log file and reverts to discarding output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeLocked()
	L = slog.New(slog.NewTextHandler(io.Discard, nil))
	return err
}

func closeLocked() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(logDir string, retentionDays int, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// Parse date from filename: xp_ini-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
