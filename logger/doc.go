// Package logger provides a small leveled logger for command-line tools,
// writing one timestamped text line per call to the console or to a file.
//
// # Record Format
//
// Every record is a single line:
//
//	240115 153045 ERROR - user alice logged in from 10.0.0.1
//
// The timestamp is yyMMdd HHmmss. Console output uses local time; file output
// uses UTC.
//
// # Levels
//
// Levels are ordered from most to least severe: FATAL, ERROR, WARN, INFO,
// DEBUG, TRACE. A logger writes a message when its level is at least as
// severe as the configured threshold. Suppressed calls return before reading
// the clock or formatting anything, so they are cheap to leave in hot paths.
// Fatal only logs; it never exits the process.
//
// # Templates
//
// Messages are templates with positional {} markers:
//
//	log.Error("user {} logged in from {}", "alice", "10.0.0.1")
//
// Without arguments the template is written verbatim. Markers without a
// matching argument stay as {} and extra arguments are ignored.
//
// # Usage
//
// Create a logger once at startup:
//
//	log := logger.New(logger.Config{Level: logger.InfoLevel})
//	log := logger.New(logger.Config{Level: logger.DebugLevel, FilePath: "./app.log"})
//
// A file that cannot be opened is not an error: the logger falls back to the
// console and prints
//
//	NanoLog error - failed to open/create file <path>
//
// Or use the package-level logger:
//
//	logger.Init(logger.Config{Level: logger.WarnLevel})
//	logger.Warn("disk {} is {}% full", "/dev/sda1", 91)
//
// # Write Errors
//
// Logging calls never fail. The first error returned by the sink is kept and
// can be checked with Logger.Err.
//
// This package is lightweight and has no external dependencies.
package logger
