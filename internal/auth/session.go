// Session-cookie [Provider] implementation
//
// Matches the original service contract: GET /session reports the cookie-backed
// session state, POST /login sets the cookie. There is no logout endpoint in
// this revision; logout is purely client-side.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ewalker/reportfill/internal/models"
	"github.com/ewalker/reportfill/internal/services"
	"github.com/ewalker/reportfill/internal/shared"
)

// SessionProvider authenticates against the server-managed session cookie.
type SessionProvider struct {
	client *services.Client
}

// NewSessionProvider creates a session-cookie provider over the given client.
func NewSessionProvider(client *services.Client) *SessionProvider {
	return &SessionProvider{client: client}
}

// Name returns the provider name.
func (p *SessionProvider) Name() string {
	return "session"
}

// Resolve probes GET /session for `{"authenticated": bool}`.
func (p *SessionProvider) Resolve(ctx context.Context) (models.Session, error) {
	resp, err := p.client.GetJSON(ctx, "/session")
	if err != nil {
		return models.Unauthenticated(), fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !resp.OK() || !resp.Bool("authenticated") {
		return models.Unauthenticated(), nil
	}

	return models.Authenticated(models.RoleUser), nil
}

// Login posts the password to /login and expects `{"success": true}`.
func (p *SessionProvider) Login(ctx context.Context, creds Credentials) (models.Session, error) {
	resp, err := p.client.PostJSON(ctx, "/login", map[string]string{"password": creds.Password})
	if err != nil {
		return models.Unauthenticated(), fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || !resp.OK() || !resp.Bool("success") {
		return models.Unauthenticated(), rejectionError(resp)
	}

	return models.Authenticated(models.RoleUser), nil
}

// Logout resets nothing server-side; this revision has no logout endpoint.
func (p *SessionProvider) Logout(ctx context.Context) error {
	return nil
}

// rejectionError builds the login failure error, preferring the server's error
// message over the generic one. The message never discloses which field was wrong.
func rejectionError(resp *services.APIResponse) error {
	if msg := resp.ErrorMessage(); msg != "" {
		return fmt.Errorf("%w: %s", shared.ErrAuthFailed, msg)
	}
	return fmt.Errorf("%w: incorrect password, please try again", shared.ErrAuthFailed)
}
