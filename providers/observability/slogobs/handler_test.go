package slogobs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// TestHandler_Compact verifies the single-line format with JSON attributes.
func TestHandler_Compact(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Format: FormatCompact, Level: slog.LevelDebug, Output: &buf}))

	logger.Info("Tool executed", slog.String("tool", "count_words"), slog.Int("count", 2))

	line := buf.String()
	if !strings.Contains(line, " INFO Tool executed → ") {
		t.Fatalf("unexpected compact line: %q", line)
	}
	payload := strings.TrimSpace(line[strings.Index(line, "→ ")+len("→ "):])
	var attrs map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &attrs); err != nil {
		t.Fatalf("attributes are not JSON: %v", err)
	}
	if attrs["tool"] != "count_words" || attrs["count"] != float64(2) {
		t.Errorf("unexpected attributes: %v", attrs)
	}
}

// TestHandler_CompactNoAttrs verifies the arrow is omitted without attributes.
func TestHandler_CompactNoAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Output: &buf}))

	logger.Warn("plain")

	if strings.Contains(buf.String(), "→") {
		t.Errorf("unexpected arrow in %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), " WARN plain\n") {
		t.Errorf("unexpected line %q", buf.String())
	}
}

// TestHandler_Pretty verifies one sorted attribute per line.
func TestHandler_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Format: FormatPretty, Output: &buf}))

	logger.Info("Query done", slog.String("b", "2"), slog.String("a", "1"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "├─ a: 1") {
		t.Errorf("line 2 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "└─ b: 2") {
		t.Errorf("line 3 = %q", lines[2])
	}
}

// TestHandler_JSON verifies the json format with durations rendered as strings.
func TestHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Format: FormatJSON, Output: &buf}))

	logger.Error("failed", slog.Duration("elapsed", 1500*time.Millisecond))

	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rec["level"] != "ERROR" || rec["msg"] != "failed" || rec["elapsed"] != "1.5s" {
		t.Errorf("unexpected record: %v", rec)
	}
}

// TestHandler_Enabled verifies level filtering.
func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&HandlerOptions{Level: slog.LevelWarn, Output: &bytes.Buffer{}})
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

// TestHandler_WithGroup verifies group prefixes on record attributes.
func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	base := NewHandler(&HandlerOptions{Format: FormatJSON, Output: &buf})
	logger := slog.New(base.WithGroup("tool"))

	logger.Info("ran", slog.String("name", "count_vowels"))

	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rec["tool.name"] != "count_vowels" {
		t.Errorf("tool.name = %v", rec["tool.name"])
	}
	if rec["msg"] != "ran" {
		t.Errorf("msg = %v", rec["msg"])
	}
}

// TestHandler_Colors verifies ANSI codes around the level when enabled.
func TestHandler_Colors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Output: &buf, Colors: true}))

	logger.Error("red")

	if !strings.Contains(buf.String(), colorRed+"ERROR"+colorReset) {
		t.Errorf("expected colored level, got %q", buf.String())
	}
}
