package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ewalker/reportfill/internal/auth"
	"github.com/ewalker/reportfill/internal/services"
	"github.com/ewalker/reportfill/internal/shared"
	"github.com/ewalker/reportfill/internal/workflow"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config   *shared.Config
	client   *services.Client
	authCtrl *auth.Controller
	subCtrl  *workflow.SubmissionController
	logger   *log.Logger
	output   io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config   *shared.Config
	Client   *services.Client
	Provider auth.Provider
	Logger   *log.Logger
	Output   io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Client == nil {
		opts.Client = services.NewClient(services.ClientOpts{
			BaseURL:   opts.Config.Server.BaseURL,
			Timeout:   time.Duration(opts.Config.Server.TimeoutSeconds) * time.Second,
			RateLimit: opts.Config.Server.RateLimit,
		})
	}
	if opts.Provider == nil {
		opts.Provider = NewProvider(opts.Config, opts.Client)
	}

	authCtrl := auth.NewController(opts.Provider, opts.Logger)
	subCtrl := workflow.NewSubmissionController(opts.Client, authCtrl, opts.Logger)
	authCtrl.OnLogout(subCtrl.Reset)

	return &Runner{
		config:   opts.Config,
		client:   opts.Client,
		authCtrl: authCtrl,
		subCtrl:  subCtrl,
		logger:   opts.Logger,
		output:   opts.Output,
	}
}

// NewProvider selects the authentication provider for the configured mode.
func NewProvider(config *shared.Config, client *services.Client) auth.Provider {
	switch config.Auth.Mode {
	case shared.AuthModeLocal:
		return auth.NewTableProvider(config.Auth.Users)
	case shared.AuthModeEndpoint:
		return auth.NewEndpointProvider(client)
	default:
		return auth.NewSessionProvider(client)
	}
}

// SetLogger replaces the Runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
