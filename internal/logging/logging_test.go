package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewSelectsHandler(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo, false).Info("booked", "reference", "bk-1")
	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON record, got %q: %v", buf.String(), err)
	}
	if record["reference"] != "bk-1" {
		t.Fatalf("unexpected record %v", record)
	}

	buf.Reset()
	New(&buf, slog.LevelWarn, true).Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info record should be filtered at warn level")
	}
	New(&buf, slog.LevelInfo, true).Info("shown", "k", "v")
	if !strings.Contains(buf.String(), "k=v") {
		t.Fatalf("expected text record, got %q", buf.String())
	}
}

func TestDiscardDropsRecords(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("discard logger should be disabled")
	}
}
