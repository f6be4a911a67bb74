package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLogDir(t *testing.T) {
	dir := DefaultLogDir()
	if dir == "" {
		t.Error("DefaultLogDir returned empty string")
	}

	if !strings.Contains(dir, ".minigrep") || filepath.Base(dir) != "logs" {
		t.Errorf("DefaultLogDir should end with .minigrep/logs, got: %s", dir)
	}
}

func TestDefaultLogPath(t *testing.T) {
	path := DefaultLogPath()

	if filepath.Base(path) != "minigrep.log" {
		t.Errorf("DefaultLogPath should end with minigrep.log, got: %s", path)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got: %s", cfg.Level)
	}
	if cfg.MaxSizeMB != 10 {
		t.Errorf("expected MaxSizeMB 10, got: %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 5 {
		t.Errorf("expected MaxBackups 5, got: %d", cfg.MaxBackups)
	}
	if cfg.WriteToStderr {
		t.Error("expected WriteToStderr to be false")
	}
}

func TestDebugConfig(t *testing.T) {
	cfg := DebugConfig()

	if cfg.Level != "debug" {
		t.Errorf("expected level 'debug', got: %s", cfg.Level)
	}
	if cfg.FilePath != DefaultLogPath() {
		t.Errorf("expected default log path, got: %s", cfg.FilePath)
	}
}

func TestSetup_WritesJSONToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "test.log")

	cfg := Config{
		Level:      "debug",
		FilePath:   logPath,
		MaxSizeMB:  1,
		MaxBackups: 3,
	}

	logger, cleanup, err := Setup(cfg)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	logger.Debug("search_complete", "matches", 2)
	cleanup()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file was not created: %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, data)
	}
	if record["msg"] != "search_complete" {
		t.Errorf("unexpected msg: %v", record["msg"])
	}
	if record["matches"] != float64(2) {
		t.Errorf("unexpected matches attr: %v", record["matches"])
	}
}

func TestSetup_RespectsLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, cleanup, err := Setup(Config{Level: "error", FilePath: logPath})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	logger.Info("dropped")
	logger.Error("kept")
	cleanup()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "dropped") {
		t.Error("info record should be filtered at error level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("error record missing")
	}
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, "warn")

	logger.Info("quiet")
	logger.Warn("settings ignored", "path", "/tmp/x")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "path=/tmp/x") {
		t.Errorf("unexpected console output: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"debug", "DEBUG"},
		{"DEBUG", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"ERROR", "ERROR"},
		{"unknown", "WARN"}, // defaults to warn
		{"", "WARN"},
	}

	for _, tc := range tests {
		level := parseLevel(tc.input)
		if level.String() != tc.expected {
			t.Errorf("parseLevel(%q) = %s, want %s", tc.input, level.String(), tc.expected)
		}
	}
}

func TestNewConsole_EmptyLevelUsesWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, "")

	logger.Info("quiet")
	logger.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Error("info should be filtered when no level is set")
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("warn record missing: %q", out)
	}
}
