package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ewalker/reportfill/internal/auth"
	"github.com/ewalker/reportfill/internal/models"
	"github.com/ewalker/reportfill/internal/shared"
	"github.com/ewalker/reportfill/internal/workflow"
	"github.com/urfave/cli/v3"
)

// Submit runs the one-shot workflow: resolve the session (logging in when
// credentials are supplied), upload both files, and save the processed report.
func (r *Runner) Submit(ctx context.Context, cmd *cli.Command) error {
	session := r.authCtrl.ResolveInitial(ctx)

	if !session.Authenticated {
		password := cmd.String("password")
		if password == "" {
			return fmt.Errorf("%w: supply --password to log in", shared.ErrNotAuthenticated)
		}
		var err error
		session, err = r.authCtrl.Login(ctx, auth.Credentials{
			Username: cmd.String("username"),
			Password: password,
		})
		if err != nil {
			return err
		}
	}
	r.logger.Info("session established", "role", session.Role.String())

	if err := r.subCtrl.SelectHTML(cmd.String("html")); err != nil {
		return err
	}
	if err := r.subCtrl.SelectExcel(cmd.String("excel")); err != nil {
		return err
	}

	result := r.subCtrl.Submit(ctx)
	if result.State != models.ResultSuccess {
		return fmt.Errorf("%w: %s", shared.ErrProcessFailed, result.Message)
	}

	outputPath := cmd.String("output")
	if outputPath == "" {
		outputPath = filepath.Join(r.config.Output.Dir, r.outputFilename())
	}

	if err := r.subCtrl.SaveResult(outputPath); err != nil {
		return err
	}
	r.writePlain("✓ Processed report saved to %s\n", outputPath)

	if cmd.Bool("open") {
		if err := shared.OpenBrowser(outputPath); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}

	return nil
}

func (r *Runner) outputFilename() string {
	if r.config.Output.Filename != "" {
		return r.config.Output.Filename
	}
	return workflow.DownloadFilename
}
