package shared

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestShared(t *testing.T) {
	t.Run("NewLogger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		logger.Info("hello")

		if buf.Len() == 0 {
			t.Error("expected log output to be written")
		}
	})

	t.Run("NewLogger nil writer defaults to stderr", func(t *testing.T) {
		if logger := NewLogger(nil); logger == nil {
			t.Error("expected logger to be created")
		}
	})

	t.Run("NewFileLogger creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "app.log")
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		logger.Info("hello")

		if _, err := VerifyAndReadFile(path); err != nil {
			t.Errorf("expected log file to exist: %v", err)
		}
	})

	t.Run("WithLogger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := WithLogger(NewLogger(&buf), "component", "test")
		logger.Info("hello")

		if !bytes.Contains(buf.Bytes(), []byte("component")) {
			t.Error("expected child logger to carry key-value pairs")
		}
	})

	t.Run("SetLogLevel", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.ErrorLevel)
		logger.Info("suppressed")

		if buf.Len() != 0 {
			t.Error("expected info log to be suppressed at error level")
		}
	})

	t.Run("GenerateID", func(t *testing.T) {
		a, b := GenerateID(), GenerateID()
		if a == "" || b == "" {
			t.Error("expected non-empty IDs")
		}
		if a == b {
			t.Error("expected unique IDs")
		}
	})
}
