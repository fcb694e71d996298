package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tempchart/internal/cli/output"
	"github.com/leapstack-labs/tempchart/pkg/temperature"
)

// NewScalesCommand creates the scales command.
func NewScalesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "List the supported temperature scales",
		Long: `List the temperature scales tempchart converts between, the unit labels
each one accepts and the formulas used to convert out of it.`,
		Example: `  # Show the scales table
  tempchart scales

  # As JSON
  tempchart scales -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScales(cmd)
		},
	}
}

func runScales(cmd *cobra.Command) error {
	r := NewCommandContext(cmd).Renderer
	infos := scaleInfos()

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(infos)
	case output.ModeYAML:
		return r.YAML(infos)
	case output.ModeMarkdown:
		return scalesMarkdown(r, infos)
	default:
		return scalesText(r, infos)
	}
}

func scaleInfos() []output.ScaleInfo {
	scales := temperature.Scales()
	infos := make([]output.ScaleInfo, 0, len(scales))
	for _, s := range scales {
		infos = append(infos, output.ScaleInfo{
			Name:     s.Name(),
			Symbol:   s.Symbol(),
			Labels:   s.Labels(),
			Formulas: s.Formulas(),
		})
	}
	return infos
}

func scalesTable(infos []output.ScaleInfo, sep string) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Scale", "Symbol", "Labels", "Converts to"})
	for _, info := range infos {
		t.AppendRow(table.Row{
			info.Name,
			info.Symbol,
			strings.Join(info.Labels, ", "),
			strings.Join(info.Formulas, sep),
		})
	}
	return t
}

func scalesText(r *output.Renderer, infos []output.ScaleInfo) error {
	styles := r.Styles()

	r.Header(1, fmt.Sprintf("Temperature Scales (%d)", len(infos)))

	t := scalesTable(infos, "\n")
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.Render()

	r.Println("")
	r.Println(styles.Muted.Render("Units are matched ignoring case, e.g. 'tempchart convert 25 C'"))
	return nil
}

func scalesMarkdown(r *output.Renderer, infos []output.ScaleInfo) error {
	r.Header(1, "Temperature Scales")
	r.Println(scalesTable(infos, "; ").RenderMarkdown())
	r.Println("")
	r.Println(output.FormatKeyValue("Matching", "case-insensitive, full name or first letter"))
	return nil
}
