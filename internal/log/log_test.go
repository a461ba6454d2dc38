package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func fixedLogger(buf *bytes.Buffer, verbose bool) *Logger {
	l := New(buf, verbose)
	l.now = func() time.Time { return time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC) }
	return l
}

func TestLevels(t *testing.T) {
	t.Parallel()

	t.Run("printf and errorf always write", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := fixedLogger(&buf, false)
		l.Printf("loaded %d tasks", 3)
		l.Errorf("save failed: %v\n", "disk full")
		want := "2026-02-09T12:00:00Z info  loaded 3 tasks\n2026-02-09T12:00:00Z error save failed: disk full\n"
		if got := buf.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("debug suppressed unless verbose", func(t *testing.T) {
		t.Parallel()
		var quiet, loud bytes.Buffer
		fixedLogger(&quiet, false).Debugf("hidden")
		fixedLogger(&loud, true).Debugf("shown")
		if quiet.Len() != 0 {
			t.Errorf("Debugf wrote %q when not verbose", quiet.String())
		}
		if !strings.Contains(loud.String(), "debug shown") {
			t.Errorf("Debugf output = %q", loud.String())
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true)
	ctx := WithLogger(context.Background(), l)
	if FromContext(ctx) != l {
		t.Error("FromContext did not return attached logger")
	}
	fallback := FromContext(context.Background())
	if fallback == nil {
		t.Fatal("expected non-nil fallback logger")
	}
	fallback.Printf("dropped")
	fallback.Debugf("dropped")
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()
	var l *Logger
	l.Printf("no panic")
	l.Errorf("no panic")
}
