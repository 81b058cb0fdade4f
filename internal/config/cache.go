package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// CacheConfig controls the GET response cache. When Enabled is false or no
// Redis client is available, caching is disabled entirely.
type CacheConfig struct {
	Enabled bool          `env:"CACHE_ENABLED" envDefault:"true"`
	TTL     time.Duration `env:"CACHE_TTL" envDefault:"30s"`
	Prefix  string        `env:"CACHE_PREFIX" envDefault:"cache"`
}

// LoadCacheConfig parses cache settings from the environment.
func LoadCacheConfig() CacheConfig {
	cfg := CacheConfig{}
	_ = env.Parse(&cfg)
	return cfg
}
