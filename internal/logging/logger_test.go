package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, "info", "json").Info("hello", "column", "Email")
		if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"column":"Email"`) {
			t.Errorf("json output = %q", buf.String())
		}
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, "warn", "text").Info("hidden")
		if buf.Len() != 0 {
			t.Errorf("info logged at warn level: %q", buf.String())
		}
	})
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(New(&buf, "info", "text"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := WithSessionID(context.Background(), "abc-123")
	if got := SessionID(ctx); got != "abc-123" {
		t.Errorf("SessionID() = %q", got)
	}

	WithFields(ctx, "column", "Email").Info("registered")

	out := buf.String()
	for _, want := range []string{"session_id=abc-123", "column=Email", "msg=registered"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	buf.Reset()
	FromContext(context.Background()).Info("plain")
	if strings.Contains(buf.String(), "session_id") {
		t.Errorf("session_id logged without one in context: %q", buf.String())
	}
}
