package diag

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestLogToleratesNilLogger(t *testing.T) {
	Log(nil, "never panics %d", 1) // must not panic
}

func TestNoOpDiscards(t *testing.T) {
	NoOp.Printf("discarded %d", 1) // must not panic
}

func TestStdLoggerWritesThrough(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(log.New(&buf, "", 0))
	Log(l, "value=%d", 42)
	if !strings.Contains(buf.String(), "value=42") {
		t.Errorf("expected log output to contain %q, got %q", "value=42", buf.String())
	}
}

func TestStdLoggerNilUnderlyingIsSafe(t *testing.T) {
	var l StdLogger
	l.Printf("no panic") // must not panic even with nil *log.Logger
}
