// Package config provides shared configuration types for tempchart.
// This package is decoupled from CLI concerns so the chart settings can be
// validated and defaulted without pulling in cobra or koanf flag handling.
package config

import (
	"fmt"
	"regexp"
	"strconv"
)

// ChartConfig holds bar chart rendering options.
type ChartConfig struct {
	// Width is the number of terminal cells available to the bars.
	Width int `koanf:"width"`

	// Colors are assigned to bars by position (source reading first).
	// Each entry is an ANSI color number (0-255) or a #rrggbb hex string.
	Colors []string `koanf:"colors"`
}

// colorPattern matches the color forms lipgloss understands.
var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3}|[0-9]{1,3})$`)

// ApplyDefaults fills unset chart options.
func (c *ChartConfig) ApplyDefaults() {
	if c.Width == 0 {
		c.Width = DefaultChartWidth
	}
	if len(c.Colors) == 0 {
		c.Colors = DefaultChartColors()
	}
}

// Validate checks the chart options are usable.
func (c *ChartConfig) Validate() error {
	if c.Width < MinChartWidth || c.Width > MaxChartWidth {
		return fmt.Errorf("chart.width must be between %d and %d, got %d", MinChartWidth, MaxChartWidth, c.Width)
	}
	if len(c.Colors) == 0 {
		return fmt.Errorf("chart.colors must list at least one color")
	}
	for i, color := range c.Colors {
		n, err := strconv.Atoi(color)
		if !colorPattern.MatchString(color) || (err == nil && n > 255) {
			return fmt.Errorf("chart.colors[%d]: %q is not an ANSI color number or hex color", i, color)
		}
	}
	return nil
}

// ColorAt returns the color for the bar at index i, cycling through Colors.
func (c *ChartConfig) ColorAt(i int) string {
	if len(c.Colors) == 0 {
		return ""
	}
	return c.Colors[i%len(c.Colors)]
}
