package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tidwall/gjson"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if result := tt.level.String(); result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		if result := ParseLogLevel(tt.input); result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func newBufferLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "test"})
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l, &buf
}

func TestLoggerFormat(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	l.WithFields(map[string]any{"b": 2, "a": 1}).WithComponent("file").Info("saved %d bytes", 42)

	want := "2024-01-02T03:04:05.000 [INFO] test: saved 42 bytes {a=1, b=2, component=file}\n"
	if got := buf.String(); got != want {
		t.Errorf("log line = %q, want %q", got, want)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[WARN]") || !strings.Contains(lines[1], "[ERROR]") {
		t.Errorf("lines = %q", lines)
	}
}

func TestLoggerDerivedSharesOutput(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	child := l.WithField("k", "v")

	l.Info("parent")
	child.Info("child")

	if strings.Count(buf.String(), "\n") != 2 {
		t.Errorf("output = %q", buf.String())
	}
	if strings.Contains(strings.Split(buf.String(), "\n")[0], "k=v") {
		t.Error("child field leaked into parent")
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Error("nothing %d", 1)
	if NullLogger.Enabled(LogLevelError) {
		t.Error("NullLogger is enabled")
	}
}

func TestOpenLogFile(t *testing.T) {
	l, closer, err := OpenLogFile("", LogLevelDebug, LogFormatText)
	if err != nil || l != NullLogger {
		t.Fatalf("OpenLogFile(\"\") = %v, %v", l, err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}

	path := filepath.Join(t.TempDir(), "ares.log")
	l, closer, err = OpenLogFile(path, LogLevelInfo, LogFormatText)
	if err != nil {
		t.Fatalf("OpenLogFile: %v", err)
	}
	l.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[INFO] ares: hello") {
		t.Errorf("log file = %q", data)
	}

	if _, _, err := OpenLogFile(filepath.Join(t.TempDir(), "no", "dir.log"), LogLevelInfo, LogFormatText); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		in   string
		want LogFormat
	}{
		{"json", LogFormatJSON},
		{"JSON", LogFormatJSON},
		{"text", LogFormatText},
		{"", LogFormatText},
		{"xml", LogFormatText},
	}
	for _, tt := range tests {
		if got := ParseLogFormat(tt.in); got != tt.want {
			t.Errorf("ParseLogFormat(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "ares", Format: LogFormatJSON})
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.WithFields(map[string]any{
		"component": "git",
		"took":      1500 * time.Millisecond,
		"n":         3,
		"a.b":       true,
	}).Warn("push %s", "failed")

	line := strings.TrimSuffix(buf.String(), "\n")
	if strings.Contains(line, "\n") {
		t.Fatalf("expected a single line, got %q", buf.String())
	}
	if !gjson.Valid(line) {
		t.Fatalf("invalid JSON: %s", line)
	}

	checks := map[string]string{
		"time":             "2026-01-02T03:04:05.000",
		"level":            "WARN",
		"logger":           "ares",
		"msg":              "push failed",
		"fields.component": "git",
		"fields.took":      "1.5s",
		"fields.n":         "3",
		`fields.a\.b`:      "true",
	}
	for path, want := range checks {
		if got := gjson.Get(line, path).String(); got != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}
	if n := gjson.Get(line, "fields.n"); n.Type != gjson.Number {
		t.Errorf("fields.n type = %v, want number", n.Type)
	}
}

func TestOpenLogFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ares.log")
	l, closer, err := OpenLogFile(path, LogLevelInfo, LogFormatJSON)
	if err != nil {
		t.Fatalf("OpenLogFile: %v", err)
	}
	l.Debug("hidden")
	l.Info("shown")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines: %q", len(lines), data)
	}
	if got := gjson.Get(lines[0], "msg").String(); got != "shown" {
		t.Errorf("msg = %q", got)
	}
}
