package qfold

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

/*
Config carries the run parameters a harness can override from a YAML
file: which noise channel to attach, its rate, and the default fold
parameters for a sweep.
*/
type Config struct {
	Channel   string  `yaml:"channel"`
	NoiseRate float64 `yaml:"noise_rate"`
	Angle     float64 `yaml:"angle"`
	FoldN     int     `yaml:"fold_n"`
	FoldS     int     `yaml:"fold_s"`
}

func NewConfig() *Config {
	return &Config{
		Channel:   "depolarizing",
		NoiseRate: DefaultNoiseRate,
		Angle:     0.4,
		FoldN:     2,
		FoldS:     3,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parameter ranges.
func (c *Config) Validate() error {
	if c.NoiseRate < 0 || c.NoiseRate > 1 {
		return fmt.Errorf("noise_rate %v outside [0,1]", c.NoiseRate)
	}
	if _, err := ChannelFor(c.Channel, c.NoiseRate); err != nil {
		return err
	}
	if c.FoldN < 0 {
		return fmt.Errorf("fold_n must be non-negative, got %d", c.FoldN)
	}
	return nil
}

// Model builds the noise model the config describes, or nil when the
// rate is zero.
func (c *Config) Model() (*NoiseModel, error) {
	if c.NoiseRate == 0 {
		return nil, nil
	}
	ch, err := ChannelFor(c.Channel, c.NoiseRate)
	if err != nil {
		return nil, err
	}
	return &NoiseModel{Channel: ch}, nil
}
