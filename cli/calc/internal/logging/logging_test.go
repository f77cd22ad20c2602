package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"calckit/cli/calc/internal/config"
)

func TestNewParsesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "debug"}, &buf)
	if logger.GetLevel() != log.DebugLevel {
		t.Fatalf("level = %v, want debug", logger.GetLevel())
	}
	logger.WithField("op", "add").Debug("evaluated")
	if !strings.Contains(buf.String(), "op=add") {
		t.Fatalf("text output missing field: %q", buf.String())
	}
}

func TestNewInvalidLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "loud"}, &buf)
	if logger.GetLevel() != log.WarnLevel {
		t.Fatalf("level = %v, want warn", logger.GetLevel())
	}
	if !strings.Contains(buf.String(), "invalid log level loud") {
		t.Fatalf("expected warning, got %q", buf.String())
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	logger.WithField("session", "abc").Info("started")
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["session"] != "abc" || entry["msg"] != "started" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}
