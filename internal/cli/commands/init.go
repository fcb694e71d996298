package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tempchart/internal/cli/output"
	intconfig "github.com/leapstack-labs/tempchart/internal/config"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter tempchart.yaml",
		Long: `Write a commented tempchart.yaml with the default settings.

tempchart looks for the file in the working directory and its parents, so a
config written at the top of a project applies to every directory below it.`,
		Example: `  # Write tempchart.yaml in the current directory
  tempchart init

  # Write it into another directory
  tempchart init ~/weather

  # Replace an existing file
  tempchart init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(NewCommandContext(cmd).Renderer, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	// Create directory if specified and doesn't exist
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, intconfig.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
	}

	written, skipped, err := copyTemplates(dir, force)
	if err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	for _, f := range written {
		r.StatusLine(f, "success", "")
	}
	for _, f := range skipped {
		r.StatusLine(f, "skipped", "already exists")
	}

	r.Println("")
	r.Success("tempchart configured!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Edit " + configPath + " to pick colors, width and precision")
	r.Println("  2. Run 'tempchart' to convert a temperature interactively")
	r.Println("  3. Run 'tempchart scales' to see the accepted units")

	return nil
}
