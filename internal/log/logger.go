package log

import (
	"fmt"
	"os"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func (l level) prefix() string {
	switch l {
	case levelDebug:
		return "\033[37m[DBG]\033[0m" // white
	case levelInfo:
		return "\033[36m[INF]\033[0m" // cyan
	case levelWarn:
		return "\033[33m[WRN]\033[0m" // yellow
	default:
		return "\033[31m[ERR]\033[0m" // red
	}
}

var (
	verbose     bool
	forceStdErr bool
)

// SetVerbose enables debug-level output.
func SetVerbose(v bool) {
	verbose = v
}

// SetForceStdErr routes all levels to stderr, keeping stdout free for
// command output such as reconciliation reports.
func SetForceStdErr(v bool) {
	forceStdErr = v
}

// Debugf logs a debug message when verbose logging is enabled.
func Debugf(format string, args ...interface{}) {
	if verbose {
		write(levelDebug, format, args...)
	}
}

// Infof logs an informational message.
func Infof(format string, args ...interface{}) {
	write(levelInfo, format, args...)
}

// Warnf logs a warning.
func Warnf(format string, args ...interface{}) {
	write(levelWarn, format, args...)
}

// Errorf logs an error message. Errors always go to stderr.
func Errorf(format string, args ...interface{}) {
	write(levelError, format, args...)
}

// Fatalf logs an error message and terminates the process.
func Fatalf(format string, args ...interface{}) {
	write(levelError, format, args...)
	os.Exit(1)
}

func write(l level, format string, args ...interface{}) {
	out := os.Stdout
	if forceStdErr || l == levelError {
		out = os.Stderr
	}
	fmt.Fprintf(out, "%s %s\n", l.prefix(), fmt.Sprintf(format, args...))
}
