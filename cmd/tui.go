package main

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ewalker/reportfill/internal/shared"
	"github.com/ewalker/reportfill/internal/ui"
	"github.com/urfave/cli/v3"
)

// UI launches the interactive terminal UI.
func (r *Runner) UI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/reportfill-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	outputPath := cmd.String("output")
	if outputPath == "" {
		outputPath = filepath.Join(r.config.Output.Dir, r.outputFilename())
	}

	model := ui.NewModel(ctx, r.authCtrl, r.subCtrl, outputPath)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
