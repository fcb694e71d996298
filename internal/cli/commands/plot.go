package commands

import (
	"github.com/leapstack-labs/tempchart/internal/cli/output"
	"github.com/leapstack-labs/tempchart/pkg/temperature"
)

// chartYLabel labels the value axis of every conversion chart.
const chartYLabel = "Temperature"

// conversionChart lays out a conversion as one bar per scale, source first,
// colored by position from the chart config.
func (c *CommandContext) conversionChart(conv temperature.Conversion) output.Chart {
	readings := conv.Readings()
	bars := make([]output.Bar, 0, len(readings))
	for i, t := range readings {
		bars = append(bars, output.Bar{
			Label: t.Scale.Name(),
			Value: t.Value,
			Color: c.Cfg.Chart.ColorAt(i),
		})
	}
	return output.Chart{
		Title:     conv.Title(),
		YLabel:    chartYLabel,
		Bars:      bars,
		Width:     c.Cfg.Chart.Width,
		Precision: c.Cfg.Precision,
	}
}

// Plot renders conv as a bar chart. It satisfies prompt.Plotter.
func (c *CommandContext) Plot(conv temperature.Conversion) error {
	c.Logger.Debug("plotting conversion",
		"source", conv.Source.String(),
		"mode", c.Renderer.EffectiveMode(),
	)
	return c.Renderer.Chart(c.conversionChart(conv))
}
