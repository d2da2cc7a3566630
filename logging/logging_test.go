package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected Level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected Format 'console', got '%s'", cfg.Format)
	}
	if cfg.File != "" {
		t.Errorf("expected no log file by default, got '%s'", cfg.File)
	}
}

func TestConfigZapLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{Level: tt.level}
			if got := cfg.zapLevel(); got != tt.expected {
				t.Errorf("zapLevel() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLoggerWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core))

	log.With(zap.String("file", "icon_16x16.png")).Warn("icon_16x16.png not found")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("expected warn level, got %v", entries[0].Level)
	}
	if entries[0].ContextMap()["file"] != "icon_16x16.png" {
		t.Errorf("expected file field, got %v", entries[0].ContextMap())
	}
}

func TestGlobalReplacement(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetGlobal(FromZap(zap.New(core)))
	defer SetGlobal(NewLogger(DefaultConfig()))

	Infof("Added %s (%dx%d)", "icon_32x32.png", 32, 32)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "Added icon_32x32.png (32x32)" {
		t.Errorf("unexpected message: %s", entries[0].Message)
	}
}
