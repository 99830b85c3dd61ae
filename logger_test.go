package gg

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsDisabledAtEveryLevel(t *testing.T) {
	SetLogger(nil)
	defer SetLogger(nil)

	h := Logger().Handler()
	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(nil, lvl) {
			t.Errorf("default logger's handler should report disabled at level %v", lvl)
		}
	}
}

func TestSetLoggerReplacesActiveLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Warn("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("want the configured logger to receive the message, got %q", buf.String())
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)
	defer SetLogger(nil)

	Logger().Warn("should be silent now")
	if buf.Len() != 0 {
		t.Errorf("SetLogger(nil) should restore the silent default, got %q", buf.String())
	}
}

func TestContextFillRectLogsWarnOnNoOp(t *testing.T) {
	var buf bytes.Buffer
	dc, err := NewContext(4, 4, WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dc.FillRect(0, 0, 0, 10)
	if !strings.Contains(buf.String(), "fillRect") {
		t.Errorf("want a warn-level trace for the non-positive-dimension no-op, got %q", buf.String())
	}
}
