package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"DEBUG", log.DebugLevel},
		{" Error ", log.ErrorLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.level); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", FieldSlug, "hello")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "slug=hello") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	logger := Discard()
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Error("FromContext did not return the stored logger")
	}
	if FromContext(context.Background()) == nil {
		t.Error("FromContext without logger returned nil")
	}
}

func TestSetDefault(t *testing.T) {
	// Not parallel: replaces the shared logger.
	original := Default()
	defer SetDefault(original)

	replacement := Discard()
	SetDefault(replacement)
	if Default() != replacement {
		t.Error("SetDefault did not replace the default logger")
	}
}
