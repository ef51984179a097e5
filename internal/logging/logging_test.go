package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		quiet bool
		want  zapcore.Level
	}{
		{"debug", false, zapcore.DebugLevel},
		{"info", false, zapcore.InfoLevel},
		{"warn", false, zapcore.WarnLevel},
		{"error", false, zapcore.ErrorLevel},
		{"bogus", false, zapcore.InfoLevel},
		{"", false, zapcore.InfoLevel},
		{"debug", true, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.level, tt.quiet); got != tt.want {
			t.Errorf("parseLevel(%q, %v) = %v, want %v", tt.level, tt.quiet, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	logger := New("debug", false)
	if logger == nil {
		t.Fatal("expected logger")
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level enabled")
	}

	quiet := New("debug", true)
	if quiet.Core().Enabled(zapcore.WarnLevel) {
		t.Error("expected quiet logger to suppress warn")
	}
}
