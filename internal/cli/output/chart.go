package output

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	barGlyph      = "█"
	axisGlyph     = "│"
	defaultWidth  = 40
	labelValueGap = "  "

	// largeMagnitude is where values switch to exponent notation.
	largeMagnitude = 1e16
)

// ErrValueOutOfRange is returned when a bar value is not a finite number.
var ErrValueOutOfRange = errors.New("value out of range")

// Bar is one labelled value of a bar chart.
type Bar struct {
	Label string
	Value float64
	Color string
}

// Chart is a titled set of bars sharing one value axis.
type Chart struct {
	Title  string
	YLabel string
	Bars   []Bar

	// Width is the number of cells available to the bars; zero uses 40.
	Width int
	// Precision is the number of decimals printed for values.
	Precision int
}

// Chart renders c in the renderer's effective mode.
func (r *Renderer) Chart(c Chart) error {
	for _, b := range c.Bars {
		if math.IsInf(b.Value, 0) || math.IsNaN(b.Value) {
			return fmt.Errorf("%w: %s is %v", ErrValueOutOfRange, b.Label, b.Value)
		}
	}
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(c.Output())
	case ModeYAML:
		return r.YAML(c.Output())
	case ModeMarkdown:
		r.chartMarkdown(c)
	default:
		r.chartText(c)
	}
	return nil
}

// Output converts the chart into its machine-readable form, rounding values
// to the chart precision.
func (c Chart) Output() ChartOutput {
	out := ChartOutput{
		Title:  c.Title,
		YLabel: c.YLabel,
		Bars:   make([]BarOutput, 0, len(c.Bars)),
	}
	for _, b := range c.Bars {
		out.Bars = append(out.Bars, BarOutput{Label: b.Label, Value: round(b.Value, c.Precision)})
	}
	return out
}

// chartText draws horizontal bars. When any value is negative the chart is
// split at a zero axis and negative bars grow to the left of it.
func (r *Renderer) chartText(c Chart) {
	styles := r.styles
	width := c.width()
	values := c.values()
	axis, lengths := BarLayout(values, width)
	hasNegative := axis > 0

	labelWidth := 0
	for _, b := range c.Bars {
		labelWidth = max(labelWidth, text.RuneWidthWithoutEscSequences(b.Label))
	}

	r.Header(1, c.Title)
	if c.YLabel != "" {
		r.Println(styles.Muted.Render(strings.Repeat(" ", labelWidth) + labelValueGap + c.YLabel))
	}

	for i, b := range c.Bars {
		bar := styles.Bar(b.Color).Render(strings.Repeat(barGlyph, lengths[i]))

		var line strings.Builder
		line.WriteString(text.Pad(b.Label, labelWidth, ' '))
		line.WriteString(labelValueGap)
		if hasNegative {
			if b.Value < 0 {
				line.WriteString(strings.Repeat(" ", axis-lengths[i]))
				line.WriteString(bar)
			} else {
				line.WriteString(strings.Repeat(" ", axis))
			}
		}
		line.WriteString(styles.Axis.Render(axisGlyph))
		right := 0
		if b.Value >= 0 {
			line.WriteString(bar)
			right = lengths[i]
		}
		line.WriteString(strings.Repeat(" ", width-axis-right))
		line.WriteString(" ")
		line.WriteString(formatValue(b.Value, c.Precision))
		r.Println(line.String())
	}
	r.Println("")
}

// chartMarkdown writes the chart as a heading and a Markdown table.
func (r *Renderer) chartMarkdown(c Chart) {
	_, lengths := BarLayout(c.values(), c.width())

	yLabel := c.YLabel
	if yLabel == "" {
		yLabel = "Value"
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Scale", yLabel, "Bar"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	for i, b := range c.Bars {
		t.AppendRow(table.Row{b.Label, formatValue(b.Value, c.Precision), strings.Repeat(barGlyph, lengths[i])})
	}

	r.Println(FormatHeader(1, c.Title))
	r.Println("")
	r.Println(t.RenderMarkdown())
}

// BarLayout scales values onto width cells. It returns the column of the zero
// axis (0 when no value is negative) and the length of each bar. Lengths are
// proportional to the distance from zero, sharing one scale on both sides.
// Infinite values fill their side of the axis and NaN gets no bar; neither
// affects the scale of the others.
func BarLayout(values []float64, width int) (axis int, lengths []int) {
	lengths = make([]int, len(values))

	var maxNeg, maxPos float64
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		if v < 0 {
			maxNeg = math.Max(maxNeg, -v)
		} else {
			maxPos = math.Max(maxPos, v)
		}
	}

	span := maxNeg + maxPos
	if span == 0 || width <= 0 {
		return 0, lengths
	}

	axis = int(math.Round(float64(width) * maxNeg / span))
	for i, v := range values {
		side := width - axis
		if v < 0 {
			side = axis
		}
		switch {
		case math.IsNaN(v):
			lengths[i] = 0
		case math.IsInf(v, 0):
			lengths[i] = side
		default:
			n := int(math.Round(math.Abs(v) / span * float64(width)))
			lengths[i] = max(0, min(n, side))
		}
	}
	return axis, lengths
}

func (c Chart) width() int {
	if c.Width <= 0 {
		return defaultWidth
	}
	return c.Width
}

func (c Chart) values() []float64 {
	values := make([]float64, len(c.Bars))
	for i, b := range c.Bars {
		values[i] = b.Value
	}
	return values
}

func formatValue(v float64, precision int) string {
	if math.Abs(v) >= largeMagnitude {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	v = round(v, precision)
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// round rounds v to precision decimals. Values too large to scale have no
// fractional digits and are returned unchanged.
func round(v float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	if math.IsInf(v*p, 0) {
		return v
	}
	return math.Round(v*p) / p
}
