// Package config holds the run configuration for the downsampling tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one downsampling run.
type Config struct {
	Input       string  `yaml:"input"`        // path to the input count matrix
	Output      string  `yaml:"output"`       // path for the downsampled matrix
	Threshold   float64 `yaml:"threshold"`    // 0 = derive from the data
	PlotDir     string  `yaml:"plot_dir"`     // empty = no plots
	StrictSBS96 bool    `yaml:"strict_sbs96"` // require canonical SBS96 row labels
	Preview     int     `yaml:"preview"`      // rows to preview on stdout
}

// Default returns a configuration with sensible values.
func Default() *Config {
	return &Config{
		Output:  "downsampled_matrix.tsv",
		Preview: 5,
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Output == "" {
		cfg.Output = Default().Output
	}
	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
