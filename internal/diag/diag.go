// Package diag provides an injectable diagnostics logger, replacing the
// teacher's mewkiz/pkg/dbg package: a single package-level Debug bool plus
// dbg.Println, unsuitable for a library with no process-wide mutable state
// (spec.md §5). A nil Logger, or the zero value of this package, is always
// safe to call and does nothing.
package diag

import "log"

// Logger receives diagnostic lines from the codec. Implementations must be
// safe to call with no setup; a nil Logger is valid and silently discards
// every call.
type Logger interface {
	Printf(format string, args ...interface{})
}

// noop is the default Logger: every call is a no-op.
type noop struct{}

func (noop) Printf(string, ...interface{}) {}

// NoOp is a Logger that discards everything it is given.
var NoOp Logger = noop{}

// Log calls l.Printf, tolerating a nil Logger so call sites never need a
// nil check of their own.
func Log(l Logger, format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.Printf(format, args...)
}

// StdLogger adapts a standard library *log.Logger to the Logger interface,
// for callers who want the teacher's dbg.Println texture without its
// shared mutable package state.
type StdLogger struct {
	*log.Logger
}

// NewStdLogger wraps l as a Logger. A nil l is valid and behaves as NoOp.
func NewStdLogger(l *log.Logger) StdLogger {
	return StdLogger{Logger: l}
}

// Printf implements Logger.
func (s StdLogger) Printf(format string, args ...interface{}) {
	if s.Logger == nil {
		return
	}
	s.Logger.Printf(format, args...)
}
