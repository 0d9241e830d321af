package logging

import "log/slog"

// Nil-tolerant wrappers: services and providers accept a nil logger in
// tests, so call sites use these instead of checking everywhere.

// Info logs at info level, doing nothing on a nil logger.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs at warn level, doing nothing on a nil logger.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs at error level with the error attached, doing nothing on a nil
// logger.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}
