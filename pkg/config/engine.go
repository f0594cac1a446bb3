package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/platewise/platewise/pkg/availability"
	"github.com/platewise/platewise/pkg/pricing"
	"github.com/platewise/platewise/pkg/similar"
)

// EngineConfig holds the tunable data driving the matching and ranking
// engine: the price-category table, the similarity weights, and the
// scorer thresholds. All of it ships with defaults and can be replaced
// by a YAML file without touching any algorithm.
type EngineConfig struct {
	MinMatchPct     int             `mapstructure:"min_match_pct"`
	SimilarCount    int             `mapstructure:"similar_count"`
	PriceCategories pricing.Table   `mapstructure:"price_categories"`
	Similarity      similar.Weights `mapstructure:"similarity"`
}

// DefaultEngineConfig returns the built-in engine configuration
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		MinMatchPct:     availability.DefaultMinMatchPct,
		SimilarCount:    similar.DefaultK,
		PriceCategories: pricing.DefaultTable(),
		Similarity:      similar.DefaultWeights(),
	}
}

// LoadEngineConfig reads the engine configuration file at path. Keys
// missing from the file keep their built-in defaults. An empty path
// returns the defaults unchanged.
func LoadEngineConfig(path string) (*EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read engine config %s: %w", path, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine config %s: %w", path, err)
	}

	if err := cfg.PriceCategories.Validate(); err != nil {
		return nil, fmt.Errorf("engine config %s: %w", path, err)
	}

	return cfg, nil
}
