package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"ann/internal/neuron"
)

// Config captures the runtime knobs for an evaluation run.
type Config struct {
	DataRoot      string         `yaml:"data_root"`
	InputColumns  []string       `yaml:"input_columns"`
	TargetColumns []string       `yaml:"target_columns"`
	InputMax      []float64      `yaml:"input_max"`
	TargetMax     []float64      `yaml:"target_max"`
	Hidden        int            `yaml:"hidden"`
	Seed          int64          `yaml:"seed"`
	LogEvery      int            `yaml:"log_every"`
	Neurons       []NeuronConfig `yaml:"neurons"`
}

// NeuronConfig describes one neuron evaluated against every example row.
// Without explicit weights, one random weight per input column is drawn.
type NeuronConfig struct {
	Kind      neuron.Kind `yaml:"kind"`
	Threshold float64     `yaml:"threshold"`
	Weights   []float64   `yaml:"weights"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	DataRoot string
	Hidden   int
	Seed     int64
	LogEvery int
}

// Load reads and validates a Config from YAML.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML from r, rejecting unknown keys.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DataRoot != "" {
		c.DataRoot = o.DataRoot
	}
	if o.Hidden > 0 {
		c.Hidden = o.Hidden
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
}

// Validate verifies the config is runnable and fills defaults.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.DataRoot == "" {
		return errors.New("data_root must be set")
	}
	if len(c.InputColumns) == 0 {
		return errors.New("at least one input column must be set")
	}
	if len(c.TargetColumns) == 0 {
		return errors.New("at least one target column must be set")
	}
	if len(c.InputMax) != 0 && len(c.InputMax) != len(c.InputColumns) {
		return fmt.Errorf("input_max has %d entries for %d input columns", len(c.InputMax), len(c.InputColumns))
	}
	if len(c.TargetMax) != 0 && len(c.TargetMax) != len(c.TargetColumns) {
		return fmt.Errorf("target_max has %d entries for %d target columns", len(c.TargetMax), len(c.TargetColumns))
	}
	if c.Hidden <= 0 {
		return fmt.Errorf("hidden must be > 0 (got %d)", c.Hidden)
	}
	for i, n := range c.Neurons {
		if len(n.Weights) != 0 && len(n.Weights) != len(c.InputColumns) {
			return fmt.Errorf("neurons[%d]: %d weights for %d input columns", i, len(n.Weights), len(c.InputColumns))
		}
		if n.Kind.Thresholded() && (n.Threshold < 0 || n.Threshold > 1) {
			return fmt.Errorf("neurons[%d]: threshold must be within [0, 1] (got %g)", i, n.Threshold)
		}
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 1
	}
	return nil
}
