package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, expected := range tests {
		t.Run(in, func(t *testing.T) {
			lvl, err := ParseLevel(in)
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
			if lvl != expected {
				t.Errorf("expected level '%s' but found '%s'", expected, lvl)
			}
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		if _, err := ParseLevel("loud"); err == nil {
			t.Errorf("expected error for unknown level but found nil")
		}
	})
}

func TestNew(t *testing.T) {
	t.Run("WritesToFile", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "logs", "f1cal.log")
		l, closer, err := New(file, "debug")
		if err != nil {
			t.Fatalf("expected no error but found %v", err)
		}
		l.Debug("loaded schedule", "races", 24)
		closer.Close()

		b, err := os.ReadFile(file)
		if err != nil {
			t.Fatalf("unable to read log file: %v", err)
		}
		if !strings.Contains(string(b), "races=24") {
			t.Errorf("expected log file to contain record but found '%s'", b)
		}
	})

	t.Run("LevelFilters", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "f1cal.log")
		l, closer, _ := New(file, "warn")
		l.Info("hidden")
		closer.Close()

		b, _ := os.ReadFile(file)
		if strings.Contains(string(b), "hidden") {
			t.Errorf("expected info record to be filtered but found '%s'", b)
		}
	})

	t.Run("EmptyPathDiscards", func(t *testing.T) {
		l, closer, err := New("", "info")
		if err != nil {
			t.Fatalf("expected no error but found %v", err)
		}
		if l == nil || closer == nil {
			t.Fatalf("expected usable logger and closer")
		}
		if err := closer.Close(); err != nil {
			t.Errorf("expected no close error but found %v", err)
		}
	})
}
