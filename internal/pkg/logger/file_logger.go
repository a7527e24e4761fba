package logger

import (
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// FileLogger writes JSON log lines to a rotated file. Long-running sync
// deployments use it so old runs stay inspectable.
type FileLogger struct {
	logger *slog.Logger
}

// NewFileLogger creates a file logger; sizes are in megabytes, age in days.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &FileLogger{logger: slog.New(handler)}
}

// Info logs an informational message.
func (fl *FileLogger) Info(args ...interface{}) {
	fl.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (fl *FileLogger) Warn(args ...interface{}) {
	fl.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (fl *FileLogger) Error(args ...interface{}) {
	fl.logger.Error(formatArgs(args...))
}

// Fatal logs the message and stops the process.
func (fl *FileLogger) Fatal(args ...interface{}) {
	fl.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs the message and panics with it.
func (fl *FileLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	fl.logger.Error(msg)
	panic(msg)
}
