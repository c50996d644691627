package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	runtime.LockOSThread()
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr, runWindow))
}

// run parses the command line and hands control to start. It returns the
// process exit code.
func run(
	args []string,
	lookupEnv func(string) (string, bool),
	stdout, stderr io.Writer,
	start func(Options, zerolog.Logger) error,
) int {
	res, err := parseOptions(args, lookupEnv)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(stderr, usageHint)
			return exitUsage
		}
		return exitFailure
	}
	if res.showHelp {
		fmt.Fprint(stdout, usageText)
		return exitOK
	}
	if res.showVersion {
		fmt.Fprintf(stdout, "%s %s\n", appName, version)
		return exitOK
	}

	logger := newLogger(stderr, res.opts.LogLevel)
	if err := start(res.opts, logger); err != nil {
		logger.Error().Err(err).Msg("Fatal")
		return exitFailure
	}
	return exitOK
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("app", appName).
		Logger()
}
