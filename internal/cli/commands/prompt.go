package commands

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tempchart/internal/prompt"
)

// NewPromptCommand creates the prompt command.
func NewPromptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Convert a temperature interactively",
		Long: `Ask for a temperature value and a unit, then chart the value in
Celsius, Fahrenheit and Kelvin.

The value is asked for again until it is a number. An unknown unit ends the
session without a chart. Prompts and messages go to stderr, the chart goes
to stdout. When stdin is not a terminal the prompts are not shown; answers
are read one per line and only error messages appear.

This is also what tempchart does when run without a subcommand.`,
		Example: `  # Start an interactive session
  tempchart prompt

  # Leave the unit blank to use kelvin
  tempchart prompt --default-unit kelvin

  # Answer from a pipe and keep the chart as JSON
  printf '25\nc\n' | tempchart prompt -o json > chart.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunPrompt(cmd)
		},
	}
}

// RunPrompt runs an interactive session on the command's stdin.
func RunPrompt(cmd *cobra.Command) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt.ValuePrompt,
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.ErrOrStderr(),
		Stderr:          cmd.ErrOrStderr(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize prompt: %w", err)
	}
	defer func() { _ = rl.Close() }()

	return runSession(cmd, rl)
}

// runSession drives one session over reader and maps its outcome to the
// command's exit status.
func runSession(cmd *cobra.Command, reader prompt.LineReader) error {
	cmdCtx := NewCommandContext(cmd)

	session := prompt.New(reader, cmdCtx, prompt.Options{
		Out:         cmdCtx.Renderer.ErrWriter(),
		Logger:      cmdCtx.Logger,
		DefaultUnit: cmdCtx.Cfg.DefaultUnit,
	})
	res := session.Run(cmd.Context())

	cmdCtx.Logger.Debug("prompt finished",
		"state", res.State,
		"attempts", res.Attempts,
	)

	switch res.State {
	case prompt.StateDone, prompt.StateCancelled:
		return nil
	default:
		return ErrReported
	}
}
