package shared

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// VerifyAndReadFile checks that path exists and is a regular file, then reads it fully.
func VerifyAndReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: file path", ErrMissingArgument)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidArgument, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}

// VerifyExtension checks that path carries one of the allowed extensions (case-insensitive).
//
// Mirrors the input-selection filter of the upload form; content is never inspected.
func VerifyExtension(path string, allowed ...string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s (want %s)", ErrInvalidFileType, path, strings.Join(allowed, " or "))
}
