package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(zapcore.AddSync(&buf), zap.InfoLevel)
	l.Info("export done", zap.String("user", "alice"))
	l.Debug("hidden")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single json line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "export done" || entry["user"] != "alice" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["caller"]; !ok {
		t.Fatalf("caller missing: %v", entry)
	}
}
