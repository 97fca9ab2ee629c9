package auth

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/ewalker/reportfill/internal/models"
)

// Controller owns the session state and applies every transition to it.
//
// Rendering layers read the session through [Controller.Session] and branch on
// it; nothing else in the application mutates authentication state.
type Controller struct {
	mu       sync.Mutex
	provider Provider
	session  models.Session
	logger   *log.Logger
	onLogout []func()
}

// NewController creates a Controller over the given provider, starting unauthenticated.
func NewController(provider Provider, logger *log.Logger) *Controller {
	return &Controller{
		provider: provider,
		session:  models.Unauthenticated(),
		logger:   logger,
	}
}

// Session returns the current session state.
func (c *Controller) Session() models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Provider returns the composed authentication provider.
func (c *Controller) Provider() Provider {
	return c.provider
}

// OnLogout registers a hook run whenever the session is reset by an explicit
// logout, so dependent state (file selection, results) never survives a
// user change.
func (c *Controller) OnLogout(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onLogout = append(c.onLogout, fn)
}

// ResolveInitial resolves the session once at startup.
//
// Fail-closed: any probe or decode failure leaves the user unauthenticated.
// No retry; a failed probe simply lands the user at the login view.
func (c *Controller) ResolveInitial(ctx context.Context) models.Session {
	session, err := c.provider.Resolve(ctx)
	if err != nil {
		c.logger.Warn("session probe failed, treating as unauthenticated", "provider", c.provider.Name(), "error", err)
		session = models.Unauthenticated()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = session
	return session
}

// Login attempts to authenticate with the given credentials.
//
// Any rejection leaves the session unauthenticated and returns a non-revealing
// error; callers must clear the typed credential input on rejection.
func (c *Controller) Login(ctx context.Context, creds Credentials) (models.Session, error) {
	session, err := c.provider.Login(ctx, creds)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.session = models.Unauthenticated()
		return c.session, err
	}

	c.session = session
	c.logger.Info("authenticated", "provider", c.provider.Name(), "role", session.Role.String())
	return c.session, nil
}

// Logout resets the session to unauthenticated and runs the registered hooks.
//
// The server notification is best-effort: a failed round-trip is logged and
// swallowed, never surfaced.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.provider.Logout(ctx); err != nil {
		c.logger.Warn("logout notification failed", "provider", c.provider.Name(), "error", err)
	}

	c.mu.Lock()
	hooks := c.onLogout
	c.session = models.Unauthenticated()
	c.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// AuthorizationLost demotes the session to unauthenticated.
//
// Invoked by the submission workflow when a protected call is rejected for
// authorization reasons; an expired session must immediately revoke access to
// the authenticated view.
func (c *Controller) AuthorizationLost() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.Authenticated {
		c.logger.Warn("authorization lost, session demoted", "provider", c.provider.Name())
	}
	c.session = models.Unauthenticated()
}
