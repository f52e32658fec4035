package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	t.Parallel()

	t.Run("printf", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, false, false).Printf("moved %d hooks\n", 3)
		if got := buf.String(); got != "moved 3 hooks\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("warnf adds prefix and newline", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, false, false).Warnf("hook %q not found", "x.py")
		if got := buf.String(); got != "Warning: hook \"x.py\" not found\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("quiet suppresses everything", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, true)
		l.Printf("a")
		l.Println("b")
		l.Warnf("c")
		l.Debug("d", "k", "v")
		if buf.Len() != 0 {
			t.Errorf("quiet logger wrote %q", buf.String())
		}
	})

	t.Run("debug only in verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, false, false).Debug("skip me")
		if buf.Len() != 0 {
			t.Errorf("non-verbose debug wrote %q", buf.String())
		}

		New(&buf, true, false).Debug("classified", "hook", "a.py", "tier", "tier1")
		got := buf.String()
		if !strings.Contains(got, "classified") || !strings.Contains(got, "hook=a.py") || !strings.Contains(got, "tier=tier1") {
			t.Errorf("debug output = %q", got)
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)
	ctx := WithLogger(context.Background(), l)

	if got := FromContext(ctx); got != l {
		t.Error("attached logger not returned")
	}

	// Missing logger yields a safe no-op.
	fallback := FromContext(context.Background())
	fallback.Printf("lost")
	fallback.Warnf("lost")
	if buf.Len() != 0 {
		t.Errorf("fallback logger leaked output: %q", buf.String())
	}
}
