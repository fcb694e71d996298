package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/leapstack-labs/tempchart/internal/cli/config"
	"github.com/leapstack-labs/tempchart/internal/cli/output"
	"github.com/spf13/cobra"
)

// ErrReported is returned by commands that already told the user what went
// wrong. The command still fails, but Execute does not print it again.
var ErrReported = errors.New("error already reported")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration
// and the logger stored on the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	if cmd.Context() == nil {
		cmd.SetContext(context.Background())
	}
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, or the defaults when no
// configuration has been loaded (commands run without the root command).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}
