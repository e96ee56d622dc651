package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriterLoggerEmitsJSONLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)
	l.Info("quiz.answer_submitted", map[string]any{"element": "Gold", "correct": true})
	l.Error("quiz.invalid_action", map[string]any{"action": "reveal"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line is not json: %v", err)
	}
	if first["msg"] != "quiz.answer_submitted" || first["element"] != "Gold" || first["correct"] != true {
		t.Fatalf("unexpected entry: %#v", first)
	}
	if first["level"] != "info" {
		t.Fatalf("unexpected level: %#v", first["level"])
	}
	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line is not json: %v", err)
	}
	if second["level"] != "error" {
		t.Fatalf("unexpected level: %#v", second["level"])
	}
}

func TestEmptyPathDiscards(t *testing.T) {
	l, err := NewJSONLogger("")
	if err != nil {
		t.Fatalf("NewJSONLogger: %v", err)
	}
	l.Info("noop", nil)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	l, err := NewJSONLogger(path)
	if err != nil {
		t.Fatalf("NewJSONLogger: %v", err)
	}
	l.Info("quiz.mode_changed", map[string]any{"mode": "quiz"})
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), `"mode":"quiz"`) {
		t.Fatalf("expected mode field in %q", string(b))
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *JSONLogger
	l.Info("x", nil)
	l.Error("x", nil)
	if err := l.Close(); err != nil {
		t.Fatalf("Close on nil: %v", err)
	}
}
