package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ewalker/reportfill/internal/models"
	"github.com/ewalker/reportfill/internal/services"
	"github.com/ewalker/reportfill/internal/shared"
)

func TestSessionProvider(t *testing.T) {
	t.Run("Resolve", func(t *testing.T) {
		t.Run("authenticated", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/session" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				json.NewEncoder(w).Encode(map[string]any{"authenticated": true})
			}))
			defer server.Close()

			p := NewSessionProvider(services.NewClient(services.ClientOpts{BaseURL: server.URL}))
			session, err := p.Resolve(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !session.Authenticated || session.Role != models.RoleUser {
				t.Errorf("expected authenticated user session, got %+v", session)
			}
		})

		t.Run("unauthenticated", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"authenticated": false})
			}))
			defer server.Close()

			p := NewSessionProvider(services.NewClient(services.ClientOpts{BaseURL: server.URL}))
			session, err := p.Resolve(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if session.Authenticated {
				t.Error("expected unauthenticated session")
			}
		})

		t.Run("network failure returns error and unauthenticated", func(t *testing.T) {
			p := NewSessionProvider(services.NewClient(services.ClientOpts{BaseURL: "http://127.0.0.1:1"}))
			session, err := p.Resolve(context.Background())
			if err == nil {
				t.Error("expected error for unreachable server")
			}
			if session.Authenticated {
				t.Error("expected unauthenticated session on failure")
			}
		})
	})

	t.Run("Login", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/login" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				var body map[string]string
				json.NewDecoder(r.Body).Decode(&body)
				if body["password"] != "hunter2" {
					t.Errorf("expected password in body, got %v", body)
				}
				json.NewEncoder(w).Encode(map[string]any{"success": true})
			}))
			defer server.Close()

			p := NewSessionProvider(services.NewClient(services.ClientOpts{BaseURL: server.URL}))
			session, err := p.Login(context.Background(), Credentials{Password: "hunter2"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !session.Authenticated {
				t.Error("expected authenticated session")
			}
		})

		t.Run("rejection uses the server message", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Invalid password"})
			}))
			defer server.Close()

			p := NewSessionProvider(services.NewClient(services.ClientOpts{BaseURL: server.URL}))
			session, err := p.Login(context.Background(), Credentials{Password: "wrong"})
			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
			if !strings.Contains(err.Error(), "Invalid password") {
				t.Errorf("expected server message, got %q", err.Error())
			}
			if session.Authenticated {
				t.Error("expected unauthenticated session after rejection")
			}
		})

		t.Run("rejection without body falls back to generic message", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			p := NewSessionProvider(services.NewClient(services.ClientOpts{BaseURL: server.URL}))
			_, err := p.Login(context.Background(), Credentials{Password: "wrong"})
			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
			if strings.Contains(err.Error(), "username") {
				t.Errorf("message must not point at a specific field: %q", err.Error())
			}
		})

		t.Run("success flag false is a rejection even on 200", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"success": false})
			}))
			defer server.Close()

			p := NewSessionProvider(services.NewClient(services.ClientOpts{BaseURL: server.URL}))
			if _, err := p.Login(context.Background(), Credentials{Password: "wrong"}); !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})
	})

	t.Run("login cookie authorizes the probe", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/login":
				http.SetCookie(w, &http.Cookie{Name: "session", Value: "tok", Path: "/"})
				json.NewEncoder(w).Encode(map[string]any{"success": true})
			case "/session":
				cookie, err := r.Cookie("session")
				json.NewEncoder(w).Encode(map[string]any{"authenticated": err == nil && cookie.Value == "tok"})
			}
		}))
		defer server.Close()

		p := NewSessionProvider(services.NewClient(services.ClientOpts{BaseURL: server.URL}))

		if _, err := p.Login(context.Background(), Credentials{Password: "pw"}); err != nil {
			t.Fatalf("login failed: %v", err)
		}

		session, err := p.Resolve(context.Background())
		if err != nil {
			t.Fatalf("probe failed: %v", err)
		}
		if !session.Authenticated {
			t.Error("expected probe to see the login cookie")
		}
	})

	t.Run("Logout is client-side only", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		p := NewSessionProvider(services.NewClient(services.ClientOpts{BaseURL: server.URL}))
		if err := p.Logout(context.Background()); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if calls != 0 {
			t.Errorf("expected no requests, server saw %d", calls)
		}
	})

	t.Run("Name", func(t *testing.T) {
		p := NewSessionProvider(nil)
		if p.Name() != "session" {
			t.Errorf("expected provider name session, got %s", p.Name())
		}
	})
}
