package sensitivity

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
)

// SweepConfig is the on-disk description of a sweep run. A nil Inputs
// block means the canonical default scenario.
type SweepConfig struct {
	Inputs     *roi.CalculatorInputs `yaml:"inputs"`
	Parameters []Parameter           `yaml:"parameters"`
}

// ValidationError reports which config field failed and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LoadConfig reads a sweep config from YAML, rejecting unknown fields.
func LoadConfig(path string) (*SweepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg SweepConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the sweep shapes. Business input values are never
// validated here; only the sweep definitions themselves.
func (c *SweepConfig) Validate() error {
	if len(c.Parameters) == 0 {
		return ValidationError{"parameters", "at least one sweep required"}
	}
	for i, p := range c.Parameters {
		field := fmt.Sprintf("parameters[%d]", i)
		if _, ok := bindings[p.Name]; !ok {
			return ValidationError{field + ".name", fmt.Sprintf("unknown parameter %q", p.Name)}
		}
		if p.Steps < 2 {
			return ValidationError{field + ".steps", fmt.Sprintf("must be >= 2, got %d", p.Steps)}
		}
		if p.Min > p.Max {
			return ValidationError{field, fmt.Sprintf("min %v exceeds max %v", p.Min, p.Max)}
		}
	}
	return nil
}

// BaseInputs resolves the inputs block, falling back to the canonical
// defaults.
func (c *SweepConfig) BaseInputs() roi.CalculatorInputs {
	if c.Inputs != nil {
		return *c.Inputs
	}
	return roi.DefaultInputs()
}
