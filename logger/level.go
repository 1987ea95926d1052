package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Level defines log severity. Lower values are more severe.
type Level int

const (
	// FatalLevel is the most severe level. Logging at it never exits the process.
	FatalLevel Level = iota
	// ErrorLevel enables error logging.
	ErrorLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// DebugLevel enables debug logging.
	DebugLevel
	// TraceLevel is the least severe level.
	TraceLevel
)

// ErrUnknownLevel is returned by ParseLevel for names that match no level.
var ErrUnknownLevel = errors.New("unknown log level")

var levelNames = [...]string{
	FatalLevel: "FATAL",
	ErrorLevel: "ERROR",
	WarnLevel:  "WARN",
	InfoLevel:  "INFO",
	DebugLevel: "DEBUG",
	TraceLevel: "TRACE",
}

// AllLevels returns all supported levels, most severe first.
func AllLevels() []Level {
	return []Level{
		FatalLevel,
		ErrorLevel,
		WarnLevel,
		InfoLevel,
		DebugLevel,
		TraceLevel,
	}
}

// String returns the upper-case level name used in records.
func (l Level) String() string {
	if l < FatalLevel || l > TraceLevel {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// Enabled reports whether a message at l passes the given threshold.
func (l Level) Enabled(threshold Level) bool {
	return l <= threshold
}

// ParseLevel parses a level name, ignoring case and surrounding spaces.
// WARNING is accepted as an alias for WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FATAL":
		return FatalLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "TRACE":
		return TraceLevel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
