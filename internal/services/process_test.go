package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ewalker/reportfill/internal/models"
	"github.com/ewalker/reportfill/internal/shared"
)

func testSelection() models.FileSelection {
	return models.FileSelection{
		HTMLPath:  "/reports/daily.html",
		HTMLData:  bytes.Repeat([]byte("a"), 10*1024),
		ExcelPath: "/reports/names.xlsx",
		ExcelData: bytes.Repeat([]byte("b"), 5*1024),
	}
}

func TestProcessFiles(t *testing.T) {
	t.Run("uploads both parts and returns the binary body", func(t *testing.T) {
		processed := bytes.Repeat([]byte("c"), 12*1024)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/process" || r.Method != http.MethodPost {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if err := r.ParseMultipartForm(32 << 20); err != nil {
				t.Fatalf("failed to parse multipart form: %v", err)
			}

			for field, wantSize := range map[string]int{"html_file": 10 * 1024, "excel_file": 5 * 1024} {
				f, header, err := r.FormFile(field)
				if err != nil {
					t.Fatalf("missing part %s: %v", field, err)
				}
				data, _ := io.ReadAll(f)
				f.Close()
				if len(data) != wantSize {
					t.Errorf("part %s: expected %d bytes, got %d", field, wantSize, len(data))
				}
				if header.Filename == "" {
					t.Errorf("part %s: expected a filename", field)
				}
			}

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(processed)
		}))
		defer server.Close()

		c := NewClient(ClientOpts{BaseURL: server.URL})
		result, err := c.ProcessFiles(context.Background(), testSelection())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(result.Data) != 12*1024 {
			t.Errorf("expected 12KB payload, got %d bytes", len(result.Data))
		}
		if !bytes.Equal(result.Data, processed) {
			t.Error("payload should round-trip unmodified")
		}
		if result.ContentType != "text/html; charset=utf-8" {
			t.Errorf("unexpected content type %s", result.ContentType)
		}
	})

	t.Run("missing selection performs no network call", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		c := NewClient(ClientOpts{BaseURL: server.URL})
		cases := []models.FileSelection{
			{},
			{HTMLData: []byte("x")},
			{ExcelData: []byte("x")},
		}
		for _, sel := range cases {
			if _, err := c.ProcessFiles(context.Background(), sel); !errors.Is(err, shared.ErrMissingFile) {
				t.Errorf("expected ErrMissingFile, got %v", err)
			}
		}
		if calls != 0 {
			t.Errorf("expected no requests, server saw %d", calls)
		}
	})

	t.Run("401 maps to session expired", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		c := NewClient(ClientOpts{BaseURL: server.URL})
		_, err := c.ProcessFiles(context.Background(), testSelection())
		if !errors.Is(err, shared.ErrSessionExpired) {
			t.Errorf("expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("server error maps to process failed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := NewClient(ClientOpts{BaseURL: server.URL})
		_, err := c.ProcessFiles(context.Background(), testSelection())
		if !errors.Is(err, shared.ErrProcessFailed) {
			t.Errorf("expected ErrProcessFailed, got %v", err)
		}
	})

	t.Run("transport error maps to process failed", func(t *testing.T) {
		c := NewClient(ClientOpts{BaseURL: "http://127.0.0.1:1"})
		_, err := c.ProcessFiles(context.Background(), testSelection())
		if !errors.Is(err, shared.ErrProcessFailed) {
			t.Errorf("expected ErrProcessFailed, got %v", err)
		}
	})

	t.Run("missing content type defaults to text/html", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// suppress Go's content sniffing header
			w.Header()["Content-Type"] = nil
			w.Write([]byte("<html/>"))
		}))
		defer server.Close()

		c := NewClient(ClientOpts{BaseURL: server.URL})
		result, err := c.ProcessFiles(context.Background(), testSelection())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.ContentType != "text/html" {
			t.Errorf("expected default content type, got %s", result.ContentType)
		}
	})
}
