package common

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, level LogLevel) *AppLogger {
	l := &AppLogger{
		level:       level,
		maxFileSize: defaultMaxFileSize,
		maxBackups:  defaultMaxBackups,
	}
	l.SetOutput(buf)
	return l
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below the level leaked through:\n%s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("expected warn and error output, got:\n%s", out)
	}
}

func TestAppLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo)

	logger.Info("relay %s at %d/%d", "de-ber", 1, 3)

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("missing level tag: %s", out)
	}
	if !strings.Contains(out, "relay de-ber at 1/3") {
		t.Errorf("message not formatted: %s", out)
	}
}

func TestAppLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelError)

	logger.Info("hidden")
	logger.SetLevel(LevelDebug)
	logger.Debug("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("message logged below the configured level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("message missing after level change")
	}
}

func TestWrapError(t *testing.T) {
	wrapped := WrapError(ErrNoCandidateRelays, "country se")
	if wrapped == nil {
		t.Fatal("WrapError returned nil for non-nil error")
	}
	if !strings.Contains(wrapped.Error(), "country se") {
		t.Errorf("context missing: %v", wrapped)
	}
	if got := WrapError(nil, "ignored"); got != nil {
		t.Errorf("WrapError(nil) = %v, want nil", got)
	}
}
