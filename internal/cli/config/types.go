// Package config provides configuration management for the tempchart CLI.
//
// Chart settings are shared with other packages through internal/config and
// re-exported here via a type alias.
package config

import (
	sharedcfg "github.com/leapstack-labs/tempchart/internal/config"
	"github.com/leapstack-labs/tempchart/pkg/temperature"
)

// ChartConfig is an alias for the shared chart configuration.
type ChartConfig = sharedcfg.ChartConfig

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool              `koanf:"verbose"`
	OutputFormat string            `koanf:"output"`
	Precision    int               `koanf:"precision"`
	DefaultUnit  temperature.Scale `koanf:"default_unit"` // zero when unset
	Chart        ChartConfig       `koanf:"chart"`
}

// Default configuration values.
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultPrecision = sharedcfg.DefaultPrecision
)

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		Precision:    DefaultPrecision,
		Chart:        sharedcfg.DefaultChart(),
	}
}
