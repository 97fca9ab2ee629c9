package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFiles(t *testing.T) {
	t.Run("VerifyAndReadFile", func(t *testing.T) {
		t.Run("reads existing file", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "report.html")
			content := []byte("<html><body>report</body></html>")
			if err := os.WriteFile(path, content, 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			data, err := VerifyAndReadFile(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if string(data) != string(content) {
				t.Errorf("content mismatch: got %q", data)
			}
		})

		t.Run("empty path", func(t *testing.T) {
			if _, err := VerifyAndReadFile(""); !errors.Is(err, ErrMissingArgument) {
				t.Errorf("expected ErrMissingArgument, got %v", err)
			}
		})

		t.Run("missing file", func(t *testing.T) {
			_, err := VerifyAndReadFile(filepath.Join(t.TempDir(), "nope.html"))
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})

		t.Run("directory", func(t *testing.T) {
			if _, err := VerifyAndReadFile(t.TempDir()); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	})

	t.Run("VerifyExtension", func(t *testing.T) {
		t.Run("accepts matching extension", func(t *testing.T) {
			if err := VerifyExtension("daily.html", ".html"); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})

		t.Run("case insensitive", func(t *testing.T) {
			if err := VerifyExtension("NAMES.XLSX", ".xlsx"); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})

		t.Run("rejects other extensions", func(t *testing.T) {
			err := VerifyExtension("names.csv", ".xlsx")
			if !errors.Is(err, ErrInvalidFileType) {
				t.Errorf("expected ErrInvalidFileType, got %v", err)
			}
		})

		t.Run("multiple allowed", func(t *testing.T) {
			if err := VerifyExtension("report.htm", ".html", ".htm"); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	})
}
