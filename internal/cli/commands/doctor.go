package commands

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/tempchart/internal/cli/config"
	"github.com/leapstack-labs/tempchart/internal/cli/output"
	"github.com/leapstack-labs/tempchart/pkg/temperature"
)

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and terminal support",
		Long: `Report what tempchart will do in this environment: which config file is
used, whether prompts are interactive, which output format and color support
were detected, whether the chart fits the terminal, and whether the
conversions reproduce known reference points.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # Run the checks
  tempchart doctor

  # Output as JSON
  tempchart doctor -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd)
		},
	}
}

// DoctorOutput is the JSON and YAML output for the doctor command.
type DoctorOutput struct {
	HealthChecks    []HealthCheck `json:"health_checks" yaml:"health_checks"`
	IssueCount      int           `json:"issue_count" yaml:"issue_count"`
	Recommendations []string      `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// HealthCheck represents a single check result.
type HealthCheck struct {
	Name   string `json:"name" yaml:"name"`
	Group  string `json:"group" yaml:"group"`
	Status string `json:"status" yaml:"status"` // "pass", "warn", "error"
	Detail string `json:"detail" yaml:"detail"`

	recommendation string // shown when Status is not "pass"
}

// doctorEnv is what the doctor knows about the process's terminal.
type doctorEnv struct {
	StdinTTY  bool
	StdoutTTY bool
	TermWidth int // 0 when unknown
	Profile   termenv.Profile
	Mode      output.Mode
}

// referencePoint is a conversion with a well known result.
type referencePoint struct {
	from temperature.Temperature
	to   temperature.Scale
	want float64
}

var referencePoints = []referencePoint{
	{temperature.Temperature{Value: 0, Scale: temperature.Celsius}, temperature.Fahrenheit, 32},
	{temperature.Temperature{Value: 100, Scale: temperature.Celsius}, temperature.Fahrenheit, 212},
	{temperature.Temperature{Value: -40, Scale: temperature.Fahrenheit}, temperature.Celsius, -40},
	{temperature.Temperature{Value: 0, Scale: temperature.Kelvin}, temperature.Celsius, -273.15},
	{temperature.Temperature{Value: 0, Scale: temperature.Kelvin}, temperature.Fahrenheit, -459.67},
	{temperature.Temperature{Value: 32, Scale: temperature.Fahrenheit}, temperature.Kelvin, 273.15},
}

func runDoctor(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	env := detectDoctorEnv(cmd.InOrStdin(), r)
	out := buildDoctorOutput(cmdCtx.Cfg, config.GetConfigFileUsed(), env)
	cmdCtx.Logger.Debug("doctor finished", "issues", out.IssueCount)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeYAML:
		return r.YAML(out)
	case output.ModeMarkdown:
		return renderDoctorMarkdown(r, out)
	default:
		return renderDoctorText(r, out)
	}
}

func detectDoctorEnv(stdin io.Reader, r *output.Renderer) doctorEnv {
	env := doctorEnv{
		StdinTTY:  isTerminalReader(stdin),
		StdoutTTY: r.IsTTY(),
		Profile:   termenv.Ascii,
		Mode:      r.EffectiveMode(),
	}
	if f, ok := r.Writer().(*os.File); ok && env.StdoutTTY {
		env.Profile = termenv.NewOutput(f).EnvColorProfile()
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			env.TermWidth = w
		}
	}
	return env
}

func isTerminalReader(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func buildDoctorOutput(cfg *config.Config, configFile string, env doctorEnv) *DoctorOutput {
	checks := []HealthCheck{
		checkConfigFile(configFile),
		checkDefaultUnit(cfg),
		checkInput(env),
		checkOutput(env),
		checkColors(env),
		checkChartWidth(cfg, env),
		checkReferencePoints(),
	}

	out := &DoctorOutput{HealthChecks: checks}
	for _, c := range checks {
		if c.Status == "pass" {
			continue
		}
		out.IssueCount++
		if c.recommendation != "" {
			out.Recommendations = append(out.Recommendations, c.recommendation)
		}
	}
	return out
}

func checkConfigFile(path string) HealthCheck {
	c := HealthCheck{Name: "Config file", Group: "configuration", Status: "pass"}
	if path == "" {
		c.Detail = "none found, using defaults"
		return c
	}
	c.Detail = path
	return c
}

func checkDefaultUnit(cfg *config.Config) HealthCheck {
	c := HealthCheck{Name: "Default unit", Group: "configuration", Status: "pass"}
	if !cfg.DefaultUnit.Valid() {
		c.Detail = "not set, a unit must always be given"
		return c
	}
	c.Detail = cfg.DefaultUnit.Name()
	return c
}

func checkInput(env doctorEnv) HealthCheck {
	c := HealthCheck{Name: "Interactive input", Group: "terminal", Status: "pass", Detail: "stdin is a terminal"}
	if !env.StdinTTY {
		c.Status = "warn"
		c.Detail = "stdin is not a terminal, prompts read piped input"
		c.recommendation = "Use 'tempchart convert <value> <unit>' in scripts instead of the prompt"
	}
	return c
}

func checkOutput(env doctorEnv) HealthCheck {
	where := "piped"
	if env.StdoutTTY {
		where = "terminal"
	}
	return HealthCheck{
		Name:   "Output format",
		Group:  "terminal",
		Status: "pass",
		Detail: fmt.Sprintf("%s (%s)", env.Mode, where),
	}
}

func checkColors(env doctorEnv) HealthCheck {
	c := HealthCheck{Name: "Colors", Group: "terminal", Status: "pass", Detail: profileName(env.Profile)}
	if !env.StdoutTTY {
		c.Detail = "off, output is not a terminal"
		return c
	}
	if env.Profile == termenv.Ascii {
		c.Status = "warn"
		c.recommendation = "Bars are drawn without color; check TERM or unset NO_COLOR"
	}
	return c
}

func checkChartWidth(cfg *config.Config, env doctorEnv) HealthCheck {
	c := HealthCheck{Name: "Chart width", Group: "terminal", Status: "pass"}

	labelWidth := 0
	for _, s := range temperature.Scales() {
		labelWidth = max(labelWidth, len(s.Name()))
	}
	// label, gap, axis, bars and a value such as " -459.67"
	needed := labelWidth + 2 + 1 + cfg.Chart.Width + 2 + 6 + cfg.Precision

	c.Detail = fmt.Sprintf("%d cells needed", needed)
	if env.TermWidth > 0 {
		c.Detail = fmt.Sprintf("%d of %d cells", needed, env.TermWidth)
		if needed > env.TermWidth {
			c.Status = "warn"
			c.recommendation = fmt.Sprintf("Lower chart.width to %d or less so bars do not wrap", cfg.Chart.Width-(needed-env.TermWidth))
		}
	}
	return c
}

func checkReferencePoints() HealthCheck {
	c := HealthCheck{Name: "Reference points", Group: "conversions", Status: "pass"}
	var failed []string
	for _, p := range referencePoints {
		got := p.from.In(p.to).Value
		if math.Abs(got-p.want) > 1e-9 {
			failed = append(failed, fmt.Sprintf("%s is %g%s, expected %g", p.from, got, p.to.Symbol(), p.want))
		}
	}
	if len(failed) > 0 {
		c.Status = "error"
		c.Detail = strings.Join(failed, "; ")
		return c
	}
	c.Detail = fmt.Sprintf("%d conversions match", len(referencePoints))
	return c
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "true color"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "no color"
	}
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) error {
	styles := r.Styles()

	r.Println(styles.Header1.Render("tempchart Health Report"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 45)))
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			if currentGroup != "" {
				r.Println("")
			}
			currentGroup = check.Group
			r.Println(styles.Bold.Render("   " + titleCaser.String(currentGroup)))
			r.Println(styles.Muted.Render("   " + strings.Repeat("-", 40)))
		}

		icon := styles.Success.Render("✓")
		switch check.Status {
		case "warn":
			icon = styles.Warning.Render("!")
		case "error":
			icon = styles.Error.Render("✗")
		}
		r.Printf("   %s %s: %s\n", icon, check.Name, styles.Muted.Render(check.Detail))
	}
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println(styles.Header2.Render("Recommendations"))
		for i, rec := range out.Recommendations {
			r.Printf("   %d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}

func renderDoctorMarkdown(r *output.Renderer, out *DoctorOutput) error {
	r.Println(output.FormatHeader(1, "tempchart Health Report"))
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			if currentGroup != "" {
				r.Println("")
			}
			currentGroup = check.Group
			r.Println(output.FormatHeader(2, titleCaser.String(currentGroup)))
			r.Println("")
		}
		r.Println(output.FormatKeyValue(
			fmt.Sprintf("[%s] %s", strings.ToUpper(check.Status), check.Name),
			check.Detail,
		))
	}
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println(output.FormatHeader(2, "Recommendations"))
		r.Println("")
		for i, rec := range out.Recommendations {
			r.Printf("%d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}
