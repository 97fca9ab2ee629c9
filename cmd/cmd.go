// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, submitCommand, uiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Verify credentials against the configured provider",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "username",
						Aliases: []string{"u"},
						Usage:   "Username (local credential table mode only)",
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "End the current session (best-effort server notification)",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Check service health and current authentication state",
				Action: r.AuthStatus,
			},
		},
	}
}

// submitCommand runs the one-shot submission workflow
func submitCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "submit",
		Usage: "Upload a report and names spreadsheet, save the processed result",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "html",
				Usage:    "Path to the HTML daily report (.html)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "excel",
				Usage:    "Path to the names spreadsheet (.xlsx)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output path for the processed report",
			},
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "Username (local credential table mode only)",
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Password, used when the session probe comes back unauthenticated",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the processed report in the browser",
			},
		},
		Action: r.Submit,
	}
}

// uiCommand launches the interactive TUI
func uiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "ui",
		Aliases: []string{"interactive", "tui"},
		Usage:   "Launch the interactive terminal UI",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output path for saved reports",
			},
		},
		Action: r.UI,
	}
}

// setupCommand creates the configuration file
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a config.toml from the embedded template",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}
