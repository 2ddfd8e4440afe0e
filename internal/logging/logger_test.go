package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"unitshift/internal/config"
	"unitshift/internal/logging"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.History.Enabled = false
	cfg.Logging.Level = "info"
	cfg.Logging.Dir = t.TempDir()

	logger, closer, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	defer closer.Close()
	logger.Info("converted value", logging.String("from", "km"))

	content := readLog(t, cfg.LogPath())
	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &record); err != nil {
		t.Fatalf("expected a JSON record in %q: %v", content, err)
	}
	if record["msg"] != "converted value" || record["from"] != "km" {
		t.Fatalf("unexpected record: %v", record)
	}
	if record["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key in %v", record)
	}
}

func TestNewFromConfigNil(t *testing.T) {
	logger, closer, err := logging.NewFromConfig(nil)
	if err != nil {
		t.Fatalf("NewFromConfig(nil): %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger instance")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("closing a console-only logger: %v", err)
	}
}

func TestConsoleLoggerOmitsSourceForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "info", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "INFO  message without caller") {
		t.Fatalf("unexpected console line %q", buf.String())
	}
}

func TestConsoleLoggerIncludesSourceForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "debug", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("message with caller")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	base, _, err := logging.New(logging.Options{Format: "console", Level: "info", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger := logging.NewComponentLogger(base, "converter").With("category", "Weight")
	logger.WithGroup("reading").Info("converted",
		logging.String("input", "12 kg"),
		logging.Float64("value", 1.5),
		logging.Error(errors.New("boom")),
	)

	line := buf.String()
	for _, fragment := range []string{"converter: converted", "category=Weight", `reading.input="12 kg"`, "reading.value=1.5", "reading.error=boom"} {
		if !strings.Contains(line, fragment) {
			t.Fatalf("expected %q in %q", fragment, line)
		}
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be rendered as a prefix, got %q", line)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "warn", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info line leaked through warn level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "WARN  shown") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logging.ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := logging.ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestFileMirrorsConsole(t *testing.T) {
	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "logs", "unitshift.log")
	logger, closer, err := logging.New(logging.Options{Level: "info", Console: &buf, FilePath: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "history").Info("recorded")

	if !strings.Contains(buf.String(), "history: recorded") {
		t.Fatalf("unexpected console output %q", buf.String())
	}
	content := readLog(t, logPath)
	if !strings.Contains(content, `"component":"history"`) || !strings.Contains(content, `"msg":"recorded"`) {
		t.Fatalf("unexpected file output %q", content)
	}

	if err := closer.Close(); err != nil {
		t.Fatalf("close log file: %v", err)
	}
	if err := closer.Close(); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("expected the log file to be released, second close returned %v", err)
	}
}

func TestErrorWithContextInjectsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "json", Level: "info", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithRequestID(context.Background(), "req-1")
	logging.ErrorWithContext(logging.WithContext(ctx, logger), "unit outside category", "category_mismatch")

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record[logging.FieldEventType] != "category_mismatch" {
		t.Fatalf("expected event_type, got %v", record)
	}
	if record[logging.FieldErrorHint] == nil {
		t.Fatalf("expected default error_hint, got %v", record)
	}
	if record[logging.FieldRequestID] != "req-1" {
		t.Fatalf("expected request id, got %v", record)
	}
	if record["level"] != "error" {
		t.Fatalf("expected lowercase level, got %v", record["level"])
	}
}

func TestWarnWithContextKeepsExplicitHint(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "warn", Console: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "conversion not recorded", "history_write_failed",
		logging.String(logging.FieldErrorHint, "check history.path"))

	line := buf.String()
	if !strings.Contains(line, `error_hint="check history.path"`) {
		t.Fatalf("expected explicit hint in %q", line)
	}
	if strings.Count(line, "error_hint=") != 1 {
		t.Fatalf("expected a single hint in %q", line)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := logging.RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request id on empty context")
	}
	if got := logging.WithRequestID(ctx, ""); got != ctx {
		t.Fatal("expected empty id to leave context untouched")
	}
	id, ok := logging.RequestIDFromContext(logging.WithRequestID(ctx, "abc"))
	if !ok || id != "abc" {
		t.Fatalf("unexpected request id %q %v", id, ok)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should not be enabled")
	}
	logging.WarnWithContext(nil, "ignored", "noop")
}
