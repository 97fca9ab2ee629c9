// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/ewalker/reportfill/internal/auth"
	"github.com/ewalker/reportfill/internal/models"
)

// MockProvider is a configurable test double for [auth.Provider]
type MockProvider struct {
	ResolveSession models.Session
	ResolveErr     error
	LoginSession   models.Session
	LoginErr       error
	LogoutErr      error
	LogoutCalls    atomic.Int32
}

func (m *MockProvider) Resolve(ctx context.Context) (models.Session, error) {
	return m.ResolveSession, m.ResolveErr
}

func (m *MockProvider) Login(ctx context.Context, creds auth.Credentials) (models.Session, error) {
	return m.LoginSession, m.LoginErr
}

func (m *MockProvider) Logout(ctx context.Context) error {
	m.LogoutCalls.Add(1)
	return m.LogoutErr
}

func (m *MockProvider) Name() string { return "mock" }

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// WriteTempFile writes content to name under a fresh temp dir and returns the path.
func WriteTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write temp file %s: %v", path, err)
	}
	return path
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
