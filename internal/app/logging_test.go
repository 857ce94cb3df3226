package app

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "test"})
	return logger, &buf
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LogLevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below level should be dropped, got %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("messages at or above level should be logged, got %q", out)
	}
}

func TestLoggerFormatting(t *testing.T) {
	logger, buf := newTestLogger(LogLevelInfo)

	logger.Info("painting %d banners", 3)

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("missing level tag, got %q", out)
	}
	if !strings.Contains(out, "test: painting 3 banners") {
		t.Errorf("missing formatted message, got %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	logger, buf := newTestLogger(LogLevelInfo)

	logger.WithComponent("render").Info("hello")

	if !strings.Contains(buf.String(), "component=render") {
		t.Errorf("missing field, got %q", buf.String())
	}
}

func TestLoggerWithFieldDoesNotMutateParent(t *testing.T) {
	logger, buf := newTestLogger(LogLevelInfo)

	_ = logger.WithField("k", "v")
	logger.Info("plain")

	if strings.Contains(buf.String(), "k=v") {
		t.Errorf("parent logger should have no fields, got %q", buf.String())
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	// Must not panic and must not write anywhere.
	NullLogger.Error("nothing")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"info", LogLevelInfo},
		{"WARN", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
