// Package cli provides the command-line interface for tempchart.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/leapstack-labs/tempchart/internal/cli/commands"
	"github.com/leapstack-labs/tempchart/internal/cli/config"
	"github.com/leapstack-labs/tempchart/internal/cli/output"
	intconfig "github.com/leapstack-labs/tempchart/internal/config"
	"github.com/leapstack-labs/tempchart/pkg/temperature"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tempchart",
		Short: "tempchart - Temperature converter with bar charts",
		Long: `tempchart converts a temperature between Celsius, Fahrenheit and Kelvin
and charts the three values side by side.

Run without a subcommand to be asked for a value and a unit, or use
'tempchart convert' for a one-shot conversion.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			// Load configuration with CLI flags
			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			// Store logger in context
			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, config.LoggerKey(), logger))

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			logger.Debug("configuration loaded",
				"output", cfg.OutputFormat,
				"precision", cfg.Precision,
				"chart_width", cfg.Chart.Width,
			)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunPrompt(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Celsius, Fahrenheit and Kelvin, charted
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tempchart.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json|yaml)")
	rootCmd.PersistentFlags().Int("precision", intconfig.DefaultPrecision, "Decimals printed for each value")
	rootCmd.PersistentFlags().Int("width", intconfig.DefaultChartWidth, "Cells available to the chart bars")
	rootCmd.PersistentFlags().String("default-unit", "", "Unit used when none is given (celsius|fahrenheit|kelvin)")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var modes []string
		for _, m := range output.Modes() {
			modes = append(modes, string(m))
		}
		return modes, cobra.ShellCompDirectiveNoFileComp
	})

	// Register completion for default-unit flag
	_ = rootCmd.RegisterFlagCompletionFunc("default-unit", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var units []string
		for _, s := range temperature.Scales() {
			units = append(units, strings.ToLower(s.Name()))
		}
		return units, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewPromptCommand())
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewScalesCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewDoctorCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, commands.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

// newLogger builds the CLI logger: debug records with --verbose, warnings
// and errors otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for tempchart.

To load completions:

Bash:
  $ source <(tempchart completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ tempchart completion bash > /etc/bash_completion.d/tempchart
  # macOS:
  $ tempchart completion bash > $(brew --prefix)/etc/bash_completion.d/tempchart

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ tempchart completion zsh > "${fpath[1]}/_tempchart"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ tempchart completion fish | source

  # To load completions for each session, execute once:
  $ tempchart completion fish > ~/.config/fish/completions/tempchart.fish

PowerShell:
  PS> tempchart completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> tempchart completion powershell > tempchart.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
