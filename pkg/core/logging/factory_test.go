package logging

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	mdwlog "github.com/msto63/bstr/foundation/core/log"
	"github.com/msto63/bstr/pkg/core/config"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output %q is not JSON: %v", buf.String(), err)
	}
	return entry
}

func TestNewLogger_CorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Name: "bstr", Level: "info", Format: "json", Output: &buf})
	logger.Info("started")

	entry := decodeLine(t, &buf)
	if entry["logger"] != "bstr" {
		t.Errorf("logger = %v, want bstr", entry["logger"])
	}
	id, _ := entry["correlation_id"].(string)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("correlation_id %q is not a UUID: %v", id, err)
	}

	buf.Reset()
	fixed := NewLogger(LoggerConfig{Level: "info", Format: "json", Output: &buf, CorrelationID: "run-1"})
	fixed.Info("again")
	if got := decodeLine(t, &buf)["correlation_id"]; got != "run-1" {
		t.Errorf("correlation_id = %v, want run-1", got)
	}
}

func TestNewLogger_Fallbacks(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "loud", Format: "xml", Output: &buf})

	if logger.GetLevel() != mdwlog.DefaultLevel() {
		t.Errorf("level = %v, want %v", logger.GetLevel(), mdwlog.DefaultLevel())
	}
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info written at default level: %q", buf.String())
	}
	logger.Warn("shown")
	if !bytes.Contains(buf.Bytes(), []byte("[WRN] shown")) {
		t.Errorf("text output = %q", buf.String())
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	want := LoggerConfig{Name: "bstr", Level: "warn", Format: "text"}
	if diff := cmp.Diff(want, DefaultLoggerConfig("bstr")); diff != "" {
		t.Errorf("DefaultLoggerConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		want    mdwlog.Level
	}{
		{"configured", "error", false, mdwlog.LevelError},
		{"verbose", "warn", true, mdwlog.LevelDebug},
		{"verbose keeps trace", "trace", true, mdwlog.LevelTrace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.General.LogLevel = tt.level
			logger := FromConfig("bstr", cfg, tt.verbose, &bytes.Buffer{})
			if logger.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestKV(t *testing.T) {
	got := KV("op", "split", 7, "skipped", "count", 3, "dangling")
	want := mdwlog.Fields{"op": "split", "count": 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("KV mismatch (-want +got):\n%s", diff)
	}
	if KV() != nil {
		t.Error("KV() should be nil")
	}
}
