package auth

import (
	"context"

	"github.com/ewalker/reportfill/internal/models"
)

// Credentials carries the login input. Username is ignored by the remote
// providers, which authenticate on the password alone.
type Credentials struct {
	Username string
	Password string
}

// Provider defines the interface for authentication backends.
//
// Implementations resolve the current identity, authenticate, and de-authenticate.
type Provider interface {
	// Resolve determines the current session state, typically once per run.
	// Implementations must fail closed: when in doubt, unauthenticated.
	Resolve(ctx context.Context) (models.Session, error)

	// Login attempts to authenticate with the given credentials.
	// A rejection returns an unauthenticated session and a non-revealing error.
	Login(ctx context.Context, creds Credentials) (models.Session, error)

	// Logout de-authenticates server-side where an endpoint exists.
	// Callers treat failures as best-effort; logout always succeeds
	// client-side regardless of network outcome.
	Logout(ctx context.Context) error

	// Name returns the provider name (e.g. "session", "local")
	Name() string
}
