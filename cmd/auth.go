package main

import (
	"context"
	"fmt"

	"github.com/ewalker/reportfill/internal/auth"
	"github.com/ewalker/reportfill/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin verifies the supplied credentials against the configured provider.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	creds := auth.Credentials{
		Username: cmd.String("username"),
		Password: cmd.String("password"),
	}

	r.logger.Info("logging in", "provider", r.authCtrl.Provider().Name())

	session, err := r.authCtrl.Login(ctx, creds)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Authenticated (role: %s)\n", session.Role)
}

// AuthLogout resets the session; the server notification is best-effort.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	r.authCtrl.Logout(ctx)
	return r.writePlain("✓ Logged out\n")
}

// AuthStatus checks service health and the current authentication state.
//
// The local credential table has no server session to probe; only the health
// check runs in that mode.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("checking auth status")

	if r.authCtrl.Provider().Name() == "local" {
		return r.writePlain("Provider: local credential table, no server session\n")
	}

	resp, err := r.client.GetJSON(ctx, "/health")
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	if !resp.OK() {
		return fmt.Errorf("%w: status %d", shared.ErrServiceUnavailable, resp.StatusCode)
	}
	r.writePlain("✓ Service is healthy\n")

	session := r.authCtrl.ResolveInitial(ctx)
	if session.Authenticated {
		r.writePlain("Authentication: ✓ Authenticated (role: %s)\n", session.Role)
	} else {
		r.writePlain("Authentication: ✗ Not authenticated\n")
	}
	return nil
}
