package logger

import (
	"log/slog"
	"os"
)

// ConsoleLogger writes human-readable log lines to stdout. It is the
// default for the CLI and for local runs of the REST service.
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a console logger filtering below the given level.
func NewConsoleLogger(level string) Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &ConsoleLogger{logger: slog.New(handler)}
}

// Info logs an informational message.
func (cl *ConsoleLogger) Info(args ...interface{}) {
	cl.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (cl *ConsoleLogger) Warn(args ...interface{}) {
	cl.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (cl *ConsoleLogger) Error(args ...interface{}) {
	cl.logger.Error(formatArgs(args...))
}

// Fatal logs the message and stops the process.
func (cl *ConsoleLogger) Fatal(args ...interface{}) {
	cl.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs the message and panics with it.
func (cl *ConsoleLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	cl.logger.Error(msg)
	panic(msg)
}
