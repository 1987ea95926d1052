package logger

import "sync/atomic"

// global state
var std atomic.Pointer[Logger]

func init() {
	std.Store(New(Config{Level: InfoLevel}))
}

// Init replaces the package-level logger. The previous logger is returned so
// callers can close it; Init itself leaves it open.
func Init(config Config) *Logger {
	return std.Swap(New(config))
}

// Default returns the package-level logger.
func Default() *Logger {
	return std.Load()
}

// Close closes the package-level logger's file sink, if any.
func Close() error {
	return Default().Close()
}

// Fatal logs at FATAL through the package-level logger. It does not exit.
func Fatal(template string, args ...any) {
	Default().Log(FatalLevel, template, args...)
}

// Error logs at ERROR through the package-level logger.
func Error(template string, args ...any) {
	Default().Log(ErrorLevel, template, args...)
}

// Warn logs at WARN through the package-level logger.
func Warn(template string, args ...any) {
	Default().Log(WarnLevel, template, args...)
}

// Info logs at INFO through the package-level logger.
func Info(template string, args ...any) {
	Default().Log(InfoLevel, template, args...)
}

// Debug logs at DEBUG through the package-level logger.
func Debug(template string, args ...any) {
	Default().Log(DebugLevel, template, args...)
}

// Trace logs at TRACE through the package-level logger.
func Trace(template string, args ...any) {
	Default().Log(TraceLevel, template, args...)
}
