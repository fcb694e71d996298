package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tempchart/pkg/temperature"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <value> [unit]",
		Short: "Convert a temperature and chart it",
		Long: `Convert a single temperature to Celsius, Fahrenheit and Kelvin and chart
the three values.

The unit is a scale name or its first letter, in any case: celsius/c,
fahrenheit/f, kelvin/k. It may be left out when default_unit is configured.

Output adapts to environment:
  - Terminal: colored bar chart
  - Piped/Scripted: Markdown table

Use --output to override: auto, text, markdown, json, yaml`,
		Example: `  # Chart 25 degrees Celsius
  tempchart convert 25 celsius

  # Negative values need -- so they are not read as flags
  tempchart convert -- -40 f

  # Machine readable output with three decimals
  tempchart convert 300 k -o json --precision 3`,
		Args: cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var units []string
			for _, s := range temperature.Scales() {
				units = append(units, strings.ToLower(s.Name()))
			}
			return units, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := ""
			if len(args) > 1 {
				unit = args[1]
			}
			return runConvert(cmd, args[0], unit)
		},
	}

	return cmd
}

func runConvert(cmd *cobra.Command, rawValue, unit string) error {
	cmdCtx := NewCommandContext(cmd)

	value, err := temperature.ParseValue(rawValue)
	if err != nil {
		return err
	}

	if strings.TrimSpace(unit) == "" && cmdCtx.Cfg.DefaultUnit.Valid() {
		unit = cmdCtx.Cfg.DefaultUnit.Name()
		cmdCtx.Logger.Debug("using default unit", "unit", unit)
	}

	conv, err := temperature.Convert(value, unit)
	if err != nil {
		return err
	}

	return cmdCtx.Plot(conv)
}
