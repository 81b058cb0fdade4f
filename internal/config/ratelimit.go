package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// RateLimitConfig controls the fixed-window request limiter. Limit requests
// are allowed per client and route within each Window.
type RateLimitConfig struct {
	Enabled bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Limit   int           `env:"RATE_LIMIT_MAX" envDefault:"60"`
	Window  time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	Prefix  string        `env:"RATE_LIMIT_PREFIX" envDefault:"rl"`
}

// LoadRateLimitConfig parses rate limiter settings from the environment and
// clamps them to sane minimums. Windows shorter than one second round up to
// one second, the limiter's bucketing granularity.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{}
	_ = env.Parse(&cfg)
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.Window < time.Second {
		cfg.Window = time.Second
	}
	return cfg
}
