package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/ots-portal/pkg/logging"
)

func TestLevel_Validate(t *testing.T) {
	for _, l := range []logging.Level{logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError} {
		if err := l.Validate(); err != nil {
			t.Errorf("Validate(%q) error = %v", l, err)
		}
	}
	if err := logging.Level("verbose").Validate(); err == nil {
		t.Error("Validate(verbose) should return error")
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelInfo, slog.LevelInfo},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{logging.Level("unknown"), slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.want {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)

	logger.Info("route resolved", "path", "/login")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["path"] != "/login" {
		t.Errorf("path = %v, want /login", entry["path"])
	}
}

func TestNewWithWriter_FiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn message not logged")
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")

	cfg := &logging.Config{}
	if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
}

func TestConfig_FinalizeInvalid(t *testing.T) {
	cfg := &logging.Config{Format: "xml"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() with invalid format should return error")
	}
}

func TestConfig_FinalizeNormalizesCase(t *testing.T) {
	t.Setenv("TEST_LOG_FORMAT", " JSON ")
	t.Setenv("TEST_LOG_SOURCE", "true")

	cfg := &logging.Config{Level: "WARN"}
	env := &logging.Env{Format: "TEST_LOG_FORMAT", AddSource: "TEST_LOG_SOURCE"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelWarn || cfg.Format != logging.FormatJSON || !cfg.AddSource {
		t.Errorf("Config = %+v, want warn/json/source", cfg)
	}
}

func TestConfig_FinalizeBadAddSource(t *testing.T) {
	t.Setenv("TEST_LOG_SOURCE", "sometimes")

	cfg := &logging.Config{}
	if err := cfg.Finalize(&logging.Env{AddSource: "TEST_LOG_SOURCE"}); err == nil {
		t.Error("Finalize() with non-boolean add_source should return error")
	}
}

func TestNewWithWriter_AddSource(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON, AddSource: true}, &buf)
	logger.Info("sourced")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if _, ok := record[slog.SourceKey]; !ok {
		t.Errorf("record = %v, want %q key", record, slog.SourceKey)
	}
}
