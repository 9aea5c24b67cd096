// internal/config/config.go

// Package config loads camiconv defaults from an optional YAML file.
// Precedence: command-line flags override the file, the file overrides
// environment defaults (TAXONKIT_DB).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds per-installation defaults shared by all converter commands.
type Config struct {
	// SampleID used when a command does not pass --sample-id.
	SampleID string `yaml:"sample_id"`

	Taxonkit TaxonkitConfig `yaml:"taxonkit"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TaxonkitConfig configures the external taxonomy resolver.
type TaxonkitConfig struct {
	// DataDir is the NCBI taxdump directory handed to taxonkit.
	DataDir string `yaml:"data_dir"`
}

// OutputConfig configures profile serialization defaults.
type OutputConfig struct {
	Format    string `yaml:"format"`     // cami | json
	Normalize *bool  `yaml:"normalize"`  // nil means true
	NormScope string `yaml:"norm_scope"` // profile | per-rank
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// Default returns the built-in configuration; TAXONKIT_DB seeds the
// resolver data dir when set.
func Default() *Config {
	return &Config{
		Taxonkit: TaxonkitConfig{DataDir: os.Getenv("TAXONKIT_DB")},
		Output:   OutputConfig{Format: "cami", NormScope: "profile"},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults unchanged; a missing file is an error (the user
// asked for it explicitly).
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ShouldNormalize resolves the tri-state normalize setting.
func (c *Config) ShouldNormalize() bool {
	return c.Output.Normalize == nil || *c.Output.Normalize
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case "", "cami", "json":
	default:
		return fmt.Errorf("invalid output.format %q", c.Output.Format)
	}
	switch c.Output.NormScope {
	case "", "profile", "per-rank":
	default:
		return fmt.Errorf("invalid output.norm_scope %q", c.Output.NormScope)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	return nil
}
