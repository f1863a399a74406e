package diag

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "enemy")

	log.Warnf("Cost for maneuver '%s' is not a valid number. Using 0.", "grapple")
	log.Errorf(errors.New("disk full"), "save failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("expected json line, got %v", err)
	}
	if first["level"] != "warn" || first["component"] != "enemy" {
		t.Fatalf("unexpected fields: %+v", first)
	}
	if !strings.Contains(first["message"].(string), "grapple") {
		t.Fatalf("expected message to mention grapple, got %v", first["message"])
	}

	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("expected json line, got %v", err)
	}
	if second["error"] != "disk full" {
		t.Fatalf("expected error field, got %+v", second)
	}
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "app").With("nav").Infof("hello")
	if !strings.Contains(buf.String(), `"component":"nav"`) {
		t.Fatalf("expected nav component, got %q", buf.String())
	}
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	rec.Infof("a %d", 1)
	rec.Warnf("b")
	rec.Errorf(errors.New("x"), "c")

	if len(rec.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(rec.Events))
	}
	if !rec.Contains(LevelInfo, "a 1") {
		t.Fatalf("expected info event")
	}
	if rec.Contains(LevelWarn, "a 1") {
		t.Fatalf("did not expect warn match")
	}
	if got := rec.ByLevel(LevelError); len(got) != 1 || got[0].Err == nil {
		t.Fatalf("unexpected error events: %+v", got)
	}
	rec.Reset()
	if len(rec.Events) != 0 {
		t.Fatalf("expected empty recorder")
	}
}
