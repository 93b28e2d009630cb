package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Fatal("Expected the logger stored in the context")
	}
	if FromContext(context.Background()) != slog.Default() {
		t.Error("Expected slog.Default without a stored logger")
	}

	FromContext(ctx).Debug("hidden")
	FromContext(ctx).Info("reloaded", "path", "style.yaml")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug record to be filtered, got %q", out)
	}
	if !strings.Contains(out, "path=style.yaml") {
		t.Errorf("Expected info record with attributes, got %q", out)
	}
}

func TestNewDebug(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Expected debug record, got %q", buf.String())
	}
}
