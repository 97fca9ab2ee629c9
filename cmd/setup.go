package main

import (
	"context"

	"github.com/ewalker/reportfill/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates a configuration file from the embedded template.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", configPath)
	return r.writePlain("✓ Created %s, edit it to set the server URL and auth mode\n", configPath)
}
