package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{" WARN ", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, closer, err := New("", log.DebugLevel)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("nothing to see")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "slide.log")

	logger, closer, err := New(path, log.InfoLevel)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("completed level", "level", 2)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "completed level") || !strings.Contains(out, "level=2") {
		t.Errorf("log output = %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at info level")
	}
}

func TestNewServer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewServer(&buf, log.InfoLevel)
	logger.Info("session started", "user", "ana")

	out := buf.String()
	if !strings.Contains(out, "slide-ssh") || !strings.Contains(out, "user=ana") {
		t.Errorf("server log output = %q", out)
	}
}
