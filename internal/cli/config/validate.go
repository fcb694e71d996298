package config

import (
	"fmt"

	"github.com/leapstack-labs/tempchart/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/tempchart/internal/config"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	if c.Precision < 0 || c.Precision > sharedcfg.MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", sharedcfg.MaxPrecision, c.Precision)
	}
	if c.DefaultUnit != 0 && !c.DefaultUnit.Valid() {
		return fmt.Errorf("default_unit: unknown scale %s", c.DefaultUnit)
	}
	return c.Chart.Validate()
}
