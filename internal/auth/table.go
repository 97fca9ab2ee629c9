// Local credential table [Provider] implementation
//
// A functional placeholder for offline use: plaintext role/credential pairs
// from the config file, no server round-trips. Real deployments should use one
// of the server-verified providers instead.
package auth

import (
	"context"
	"strings"

	"github.com/ewalker/reportfill/internal/models"
	"github.com/ewalker/reportfill/internal/shared"
)

// TableProvider matches credentials against a fixed in-memory table.
type TableProvider struct {
	users []shared.LocalUser
}

// NewTableProvider creates a provider over the given credential table.
func NewTableProvider(users []shared.LocalUser) *TableProvider {
	return &TableProvider{users: users}
}

// Name returns the provider name.
func (p *TableProvider) Name() string {
	return "local"
}

// Resolve always starts unauthenticated; there is no server session to probe.
func (p *TableProvider) Resolve(ctx context.Context) (models.Session, error) {
	return models.Unauthenticated(), nil
}

// Login matches username and password against the table.
//
// The match is exact and case-sensitive, with the username trimmed of
// surrounding whitespace. First matching entry wins. A miss never reveals
// which field was wrong.
func (p *TableProvider) Login(ctx context.Context, creds Credentials) (models.Session, error) {
	username := strings.TrimSpace(creds.Username)

	for _, u := range p.users {
		if u.Username == username && u.Password == creds.Password {
			return models.Authenticated(models.ParseRole(u.Role)), nil
		}
	}

	return models.Unauthenticated(), shared.ErrInvalidCredentials
}

// Logout is purely local.
func (p *TableProvider) Logout(ctx context.Context) error {
	return nil
}
