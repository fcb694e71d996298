package config

// Default configuration values.
const (
	DefaultPrecision  = 2
	MaxPrecision      = 10
	DefaultChartWidth = 40
	MinChartWidth     = 10
	MaxChartWidth     = 200
)

// DefaultChartColors returns the bar colors used when none are configured:
// bright blue, green and red, in bar order.
func DefaultChartColors() []string {
	return []string{"12", "10", "9"}
}

// DefaultChart returns a ChartConfig with every option defaulted.
func DefaultChart() ChartConfig {
	c := ChartConfig{}
	c.ApplyDefaults()
	return c
}
