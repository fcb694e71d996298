package output

// ChartOutput is the JSON and YAML form of a chart.
type ChartOutput struct {
	Title  string      `json:"title" yaml:"title"`
	YLabel string      `json:"y_label,omitempty" yaml:"y_label,omitempty"`
	Bars   []BarOutput `json:"bars" yaml:"bars"`
}

// BarOutput is one bar of a ChartOutput.
type BarOutput struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// ScaleInfo describes a supported temperature scale for the scales command.
type ScaleInfo struct {
	Name     string   `json:"name" yaml:"name"`
	Symbol   string   `json:"symbol" yaml:"symbol"`
	Labels   []string `json:"labels" yaml:"labels"`
	Formulas []string `json:"formulas" yaml:"formulas"`
}
