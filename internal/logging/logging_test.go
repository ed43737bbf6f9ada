package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pong.log")

	logger, closer, err := New(Options{Path: path, Level: "debug", Prefix: "test"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("goal", "side", "left")
	logger.Debug("tick", "n", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	out := string(data)
	for _, want := range []string{"goal", "side=left", "tick", "test"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestNewLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.log")

	logger, closer, err := New(Options{Path: path, Level: "warn"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	_ = closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn message should be logged")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("New() with an unknown level should fail")
	}
}

func TestNewStderr(t *testing.T) {
	logger, closer, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger == nil || closer == nil {
		t.Fatal("New() should return a logger and a closer")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
