package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Config defines options for New and Init.
type Config struct {
	// Level is the threshold; messages less severe than it are dropped.
	// Default: FatalLevel (the zero value), so set it explicitly.
	Level Level
	// FilePath writes records to this file (created/truncated); empty writes to Console.
	// Default: "" (console output)
	FilePath string
	// Console is the standard output sink. It also receives the notice printed
	// when FilePath cannot be opened.
	// Default: nil (os.Stdout)
	Console io.Writer
}

// Dependency injection point for pinning the clock in tests.
var timeNow = time.Now

// Logger writes leveled records to a single sink chosen at construction.
// Threshold and sink never change afterwards.
type Logger struct {
	level    Level
	out      io.Writer
	file     *os.File
	filePath string

	mu  sync.Mutex
	err error
}

// New creates a Logger. It never fails: when the file cannot be opened the
// logger falls back to the console and prints a one-line notice there.
func New(config Config) *Logger {
	console := config.Console
	if console == nil {
		console = os.Stdout
	}
	l := &Logger{level: config.Level, out: console}
	if config.FilePath == "" {
		return l
	}

	f, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		fmt.Fprintf(console, "NanoLog error - failed to open/create file %s\n", config.FilePath)
		return l
	}
	l.out = f
	l.file = f
	l.filePath = config.FilePath
	return l
}

// Level returns the configured threshold.
func (l *Logger) Level() Level {
	return l.level
}

// FilePath returns the path of the file sink, or "" when writing to the console.
func (l *Logger) FilePath() string {
	return l.filePath
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level.Enabled(l.level)
}

// Err returns the first error returned by the sink, if any.
// Logging calls themselves never report write failures.
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close closes the file sink if one was opened. Console sinks are left open.
// Calling Close more than once is safe. Records logged after the file is
// closed are dropped and Err reports os.ErrClosed.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.out = closedSink{}
	return err
}

type closedSink struct{}

func (closedSink) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

// Log writes a record at level when it passes the threshold.
// Levels outside FatalLevel..TraceLevel are dropped.
func (l *Logger) Log(level Level, template string, args ...any) {
	if level < FatalLevel || level > TraceLevel || !level.Enabled(l.level) {
		return
	}
	l.write(level, template, args)
}

// Fatal logs at FATAL. It does not exit the process.
func (l *Logger) Fatal(template string, args ...any) {
	if !FatalLevel.Enabled(l.level) {
		return
	}
	l.write(FatalLevel, template, args)
}

// Error logs at ERROR.
func (l *Logger) Error(template string, args ...any) {
	if !ErrorLevel.Enabled(l.level) {
		return
	}
	l.write(ErrorLevel, template, args)
}

// Warn logs at WARN.
func (l *Logger) Warn(template string, args ...any) {
	if !WarnLevel.Enabled(l.level) {
		return
	}
	l.write(WarnLevel, template, args)
}

// Info logs at INFO.
func (l *Logger) Info(template string, args ...any) {
	if !InfoLevel.Enabled(l.level) {
		return
	}
	l.write(InfoLevel, template, args)
}

// Debug logs at DEBUG.
func (l *Logger) Debug(template string, args ...any) {
	if !DebugLevel.Enabled(l.level) {
		return
	}
	l.write(DebugLevel, template, args)
}

// Trace logs at TRACE.
func (l *Logger) Trace(template string, args ...any) {
	if !TraceLevel.Enabled(l.level) {
		return
	}
	l.write(TraceLevel, template, args)
}

func (l *Logger) write(level Level, template string, args []any) {
	record := buildRecord(timeNow(), l.filePath != "", level, template, args)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := io.WriteString(l.out, record); err != nil && l.err == nil {
		l.err = err
	}
}
