package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestMakeWritesToBuffer(t *testing.T) {
	var buf bytes.Buffer
	log, err := New().FromBuffer(&buf).Make()
	if err != nil {
		t.Fatalf("Make failed: %v", err)
	}
	defer log.Close()

	log.Logger.Info().Str("key", "value").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"message":"hello"`) {
		t.Errorf("Expected message in output, got %q", out)
	}
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("Expected field in output, got %q", out)
	}
}

func TestLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	log, err := New().FromBuffer(&buf).Level(zerolog.WarnLevel).Make()
	if err != nil {
		t.Fatalf("Make failed: %v", err)
	}

	log.Logger.Debug().Msg("quiet")
	log.Logger.Info().Msg("quiet")
	log.Logger.Warn().Msg("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("Messages below the threshold should be dropped, got %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("Messages at the threshold should pass, got %q", out)
	}
}

func TestMakeOpensLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.log")
	log, err := New().FromPath(path).Make()
	if err != nil {
		t.Fatalf("Make failed: %v", err)
	}

	log.Logger.Info().Msg("to disk")
	if err := log.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "to disk") {
		t.Errorf("Expected message in log file, got %q", string(data))
	}
}

func TestCloseWithoutFile(t *testing.T) {
	log, err := New().FromBuffer(&bytes.Buffer{}).Make()
	if err != nil {
		t.Fatalf("Make failed: %v", err)
	}
	if err := log.Close(); err != nil {
		t.Errorf("Close without a file should be a no-op, got %v", err)
	}
}
