// Package config resolves the uigate home directory and loads the analyzer
// policy configuration: score weights, pass criteria, and the suggestion
// confidence threshold. Invalid overrides fail fast; nothing is silently
// renormalized.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harrison/uigate/internal/filelock"
	"github.com/harrison/uigate/internal/pattern"
	"github.com/harrison/uigate/internal/scoring"
)

// ConfigFileName is the policy file inside the uigate home directory.
const ConfigFileName = "config.yaml"

// Config is the analyzer policy. Zero-valued sections fall back to the stock
// defaults; present sections are validated as a whole.
type Config struct {
	Weights      *scoring.Weights      `yaml:"weights,omitempty"`
	PassCriteria *scoring.PassCriteria `yaml:"pass_criteria,omitempty"`

	// HighConfidenceThreshold overrides the suggestion scorer's high-band
	// boundary when positive.
	HighConfidenceThreshold float64 `yaml:"high_confidence_threshold,omitempty"`

	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the stock policy: default weights, default pass criteria,
// and the module-wide confidence threshold.
func Default() *Config {
	weights := scoring.DefaultWeights()
	criteria := scoring.DefaultPassCriteria()
	return &Config{
		Weights:                 &weights,
		PassCriteria:            &criteria,
		HighConfidenceThreshold: pattern.HighConfidenceThreshold,
		LogLevel:                "info",
	}
}

// fillDefaults backfills sections a partial file omitted, per the Config
// contract: zero-valued sections fall back to the stock defaults.
func (c *Config) fillDefaults() {
	if c.Weights == nil {
		weights := scoring.DefaultWeights()
		c.Weights = &weights
	}
	if c.PassCriteria == nil {
		criteria := scoring.DefaultPassCriteria()
		c.PassCriteria = &criteria
	}
	if c.HighConfidenceThreshold == 0 {
		c.HighConfidenceThreshold = pattern.HighConfidenceThreshold
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks every present section. Weight errors are fatal rather than
// renormalized so the gate stays reproducible.
func (c *Config) Validate() error {
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return err
		}
	}
	if c.PassCriteria != nil {
		if c.PassCriteria.MinOverallScore < 0 || c.PassCriteria.MinOverallScore > 100 {
			return fmt.Errorf("min_overall_score %v outside [0, 100]", c.PassCriteria.MinOverallScore)
		}
	}
	if c.HighConfidenceThreshold < 0 || c.HighConfidenceThreshold > 100 {
		return fmt.Errorf("high_confidence_threshold %v outside [0, 100]", c.HighConfidenceThreshold)
	}
	return nil
}

// Load reads and validates a policy file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromHome loads the policy from the uigate home directory, falling back
// to Default when no config file exists.
func LoadFromHome() (*Config, error) {
	home, err := Home()
	if err != nil {
		return nil, err
	}
	path := home + string(os.PathSeparator) + ConfigFileName
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the policy to the given path under a file lock, so concurrent
// CLI invocations cannot interleave partial writes.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return filelock.LockAndWrite(path, data)
}
