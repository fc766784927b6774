package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterLoggerWritesLevelAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	l.Info("completion received", map[string]any{"bytes": 12})

	out := buf.String()
	for _, want := range []string{"INFO", "completion received", `"bytes"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output:\n%s", want, out)
		}
	}
}

func TestDebugRespectsEnabledFlag(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	Debug(false, l, "hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output when disabled, got %q", buf.String())
	}

	Debugf(true, l, "request model=%s", "gpt-4o-mini")
	out := buf.String()
	if !strings.Contains(out, "DEBUG") || !strings.Contains(out, "request model=gpt-4o-mini") {
		t.Fatalf("unexpected debug output: %q", out)
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Debug(true, nil, "msg", nil)
	Info(nil, "msg", nil)
	Warn(nil, "msg", nil)
	Error(nil, "msg", nil)
}

func TestNewWriterLoggerNilWriter(t *testing.T) {
	if _, ok := NewWriterLogger(nil).(NopLogger); !ok {
		t.Fatal("expected NopLogger for nil writer")
	}
}
