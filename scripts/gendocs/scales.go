package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/tempchart/pkg/temperature"
)

// referenceValues are charted on the scales page, one row per source value.
var referenceValues = []temperature.Temperature{
	{Value: 0, Scale: temperature.Kelvin},
	{Value: -40, Scale: temperature.Celsius},
	{Value: 0, Scale: temperature.Celsius},
	{Value: 98.6, Scale: temperature.Fahrenheit},
	{Value: 100, Scale: temperature.Celsius},
}

// generateScaleDocs writes the temperature scale reference page.
func generateScaleDocs(outDir string) error {
	log.Printf("Generating scale docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Temperature Scales", "Scales, accepted unit names and conversion formulas")
	w.GeneratedMarker()

	w.Header(1, "Temperature Scales")
	w.Paragraph("Units are matched case-insensitively against the full scale name or its single-letter abbreviation.")

	var rows [][]string
	for _, s := range temperature.Scales() {
		labels := make([]string, 0, 2)
		for _, l := range s.Labels() {
			labels = append(labels, InlineCode(l))
		}
		rows = append(rows, []string{s.Name(), s.Symbol(), strings.Join(labels, ", ")})
	}
	w.Table([]string{"Scale", "Symbol", "Accepted units"}, rows)

	w.Header(2, "Formulas")
	for _, s := range temperature.Scales() {
		w.Header(3, s.Name())
		w.CodeBlock("text", strings.Join(s.Formulas(), "\n"))
	}

	w.Header(2, "Reference Points")
	headers := []string{"Input"}
	for _, s := range temperature.Scales() {
		headers = append(headers, s.Name())
	}
	rows = rows[:0]
	for _, t := range referenceValues {
		row := []string{t.String()}
		for _, s := range temperature.Scales() {
			row = append(row, fmt.Sprintf("%.2f", t.In(s).Value))
		}
		rows = append(rows, row)
	}
	w.Table(headers, rows)

	filename := filepath.Join(outDir, "scales.md")
	log.Printf("  Generated scales.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}
