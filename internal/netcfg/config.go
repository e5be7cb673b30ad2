// Package netcfg defines the configuration shared by the CLI and the
// library/binding surface: the admission threshold and output format,
// validated with github.com/go-playground/validator/v10.
package netcfg

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Format selects the report layout (spec.md §4.E).
type Format string

const (
	FormatPlain  Format = "plain"
	FormatObject Format = "object"
)

// InvalidThresholdError is returned when a threshold is NaN, infinite, or
// negative.
type InvalidThresholdError struct {
	Value float64
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("invalid threshold %v: must be finite and non-negative", e.Value)
}

// Config holds the knobs common to build_network and the CLI's build
// subcommand.
type Config struct {
	Threshold float64 `validate:"gte=0"`
	Format    Format  `validate:"oneof=plain object"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	return validator.New()
}

// NewConfig validates threshold and format and returns the resulting
// Config, or the first structured error encountered.
func NewConfig(threshold float64, format Format) (Config, error) {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		return Config{}, &InvalidThresholdError{Value: threshold}
	}
	if format == "" {
		format = FormatPlain
	}
	cfg := Config{Threshold: threshold, Format: format}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
