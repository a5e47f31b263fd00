// Package config holds the driver-visible configuration surface of the
// resemblance engine.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/odessbench/deltabench/internal/feature"
)

// Config is the full set of construction parameters the core accepts.
// It is the YAML-serializable shape used by cmd/deltabench's --config
// flag, so benchmark runs are reproducible.
type Config struct {
	SampleMask            uint64 `yaml:"sample_mask"`
	FeatureCount          int    `yaml:"feature_count"`
	SuperFeatureCount     int    `yaml:"super_feature_count"`
	FixTransformConstants bool   `yaml:"fix_transform_constants"`
}

// Default returns the Odess defaults: sample mask k1/128, N=12
// features grouped into M=3 super-features, fixed transform constants
// (so repeated benchmark runs agree on which records are similar).
func Default() Config {
	return Config{
		SampleMask:            feature.DefaultSampleMask,
		FeatureCount:          feature.DefaultFeatureCount,
		SuperFeatureCount:     feature.DefaultSuperFeatureCount,
		FixTransformConstants: true,
	}
}

// Validate enforces the one construction-time constraint: feature_count
// must be a multiple of super_feature_count.
func (c Config) Validate() error {
	if c.FeatureCount <= 0 || c.SuperFeatureCount <= 0 {
		return fmt.Errorf("config: feature_count and super_feature_count must be positive")
	}
	if c.FeatureCount%c.SuperFeatureCount != 0 {
		return fmt.Errorf("config: feature_count %d must be a multiple of super_feature_count %d", c.FeatureCount, c.SuperFeatureCount)
	}
	return nil
}

// Load reads a Config from a YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
