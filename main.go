package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mordilloSan/nanolog/internal/config"
	"github.com/mordilloSan/nanolog/logger"
	"github.com/spf13/pflag"
)

const usage = `usage: nanolog [flags] <level> <template> [args...]

Writes one record to standard output or to --file. Each {} in the template
is replaced by the next argument.

Example:
  nanolog --level debug error "user {} logged in from {}" alice 10.0.0.1

Flags:
`

// Exit codes.
const (
	exitOK         = 0
	exitWriteError = 1
	exitUsage      = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("nanolog", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	// Diagnostics for the command itself go to stderr.
	diag := logger.New(logger.Config{Level: logger.ErrorLevel, Console: stderr})

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		diag.Error("nanolog: {}", err)
		fs.Usage()
		return exitUsage
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return exitUsage
	}
	level, err := logger.ParseLevel(rest[0])
	if err != nil {
		diag.Error("nanolog: {}", err)
		return exitUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		diag.Error("nanolog: {}", err)
		return exitUsage
	}
	lc, err := cfg.LoggerConfig(stdout)
	if err != nil {
		diag.Error("nanolog: {}", err)
		return exitUsage
	}

	log := logger.New(lc)
	log.Log(level, rest[1], toArgs(rest[2:])...)

	werr := log.Err()
	if cerr := log.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		diag.Error("nanolog: write failed: {}", werr)
		return exitWriteError
	}
	return exitOK
}

func toArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
