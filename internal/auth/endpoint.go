// Login/logout endpoint [Provider] implementation
package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ewalker/reportfill/internal/models"
	"github.com/ewalker/reportfill/internal/services"
	"github.com/ewalker/reportfill/internal/shared"
)

// EndpointProvider authenticates against explicit login and logout endpoints.
type EndpointProvider struct {
	client *services.Client
}

// NewEndpointProvider creates a login/logout endpoint provider over the given client.
func NewEndpointProvider(client *services.Client) *EndpointProvider {
	return &EndpointProvider{client: client}
}

// Name returns the provider name.
func (p *EndpointProvider) Name() string {
	return "endpoint"
}

// Resolve probes GET /auth/status for `{"authenticated": bool}`.
func (p *EndpointProvider) Resolve(ctx context.Context) (models.Session, error) {
	resp, err := p.client.GetJSON(ctx, "/auth/status")
	if err != nil {
		return models.Unauthenticated(), fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !resp.OK() || !resp.Bool("authenticated") {
		return models.Unauthenticated(), nil
	}

	return models.Authenticated(models.RoleUser), nil
}

// Login posts the password to /auth/login and expects `{"authenticated": true}`.
func (p *EndpointProvider) Login(ctx context.Context, creds Credentials) (models.Session, error) {
	resp, err := p.client.PostJSON(ctx, "/auth/login", map[string]string{"password": creds.Password})
	if err != nil {
		return models.Unauthenticated(), fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || !resp.OK() || !resp.Bool("authenticated") {
		return models.Unauthenticated(), rejectionError(resp)
	}

	return models.Authenticated(models.RoleUser), nil
}

// Logout notifies POST /auth/logout. The controller treats the returned error
// as best-effort; the local session resets regardless of network outcome.
func (p *EndpointProvider) Logout(ctx context.Context) error {
	if _, err := p.client.PostJSON(ctx, "/auth/logout", nil); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	return nil
}
