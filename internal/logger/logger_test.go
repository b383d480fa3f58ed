package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	InitLoggerWithWriter(NewConfig("info", "JSON", "valley-test", "1.2.0", "test", false), &buf)
	Info("crop list served", "entity", "crops", "count", 13)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	want := map[string]any{
		"service":     "valley-test",
		"version":     "1.2.0",
		"environment": "test",
		"msg":         "crop list served",
		"level":       "INFO",
		"entity":      "crops",
		"count":       float64(13),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("Expected %s=%v, got %v", k, v, entry[k])
		}
	}
	if _, ok := entry["source"]; ok {
		t.Error("Expected no source outside development")
	}
}

func TestDevelopmentAddsSource(t *testing.T) {
	var buf bytes.Buffer

	InitLoggerWithWriter(NewConfig("debug", "json", "svc", "dev", "dev", true), &buf)
	Error("decode failed")

	if !strings.Contains(buf.String(), `"source"`) {
		t.Errorf("Expected source location, got %q", buf.String())
	}
}

func TestTextLoggingIncludesRequestID(t *testing.T) {
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: "debug", Format: "text", ServiceName: "svc"}, &buf)

	ctx := WithRequestID(context.Background(), "req-42")
	FromContext(ctx).Debug("lookup", "entity", "crops")

	out := buf.String()
	if !strings.Contains(out, "request_id=req-42") {
		t.Errorf("Expected request_id in output, got %q", out)
	}
	if !strings.Contains(out, "service=svc") {
		t.Errorf("Expected service attribute in output, got %q", out)
	}
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), GenerateRequestID())
	if id := GetRequestID(ctx); len(id) != 36 {
		t.Errorf("Expected a uuid request id, got %q", id)
	}

	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("Expected empty request id, got %q", id)
	}
	if FromContext(context.Background()) != slog.Default() {
		t.Error("Expected the default logger without a request id")
	}
}

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for level, want := range tests {
		if got := (Config{Level: level}).LogLevel(); got != want {
			t.Errorf("LogLevel(%q) = %v, want %v", level, got, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: "warn", Format: "json"}, &buf)
	Info("hidden")

	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %q", buf.String())
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvVersion, "")
	t.Setenv(EnvEnvironment, "staging")

	cfg := FromEnv("valley-companion-discord")

	if cfg.ServiceName != "valley-companion-discord" {
		t.Errorf("Expected service name to be set, got %q", cfg.ServiceName)
	}
	if cfg.Level != "debug" || !cfg.IsJSON() {
		t.Errorf("Expected debug json, got %s %s", cfg.Level, cfg.Format)
	}
	if cfg.Version != DefaultVersion {
		t.Errorf("Expected empty VERSION to keep the default, got %q", cfg.Version)
	}
	if cfg.Environment != "staging" {
		t.Errorf("Expected staging, got %q", cfg.Environment)
	}
}
