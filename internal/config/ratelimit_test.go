package config

import (
	"testing"
	"time"
)

func TestLoadRateLimitConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := LoadRateLimitConfig()
		if !cfg.Enabled {
			t.Error("expected limiter enabled by default")
		}
		if cfg.Limit != 60 || cfg.Window != time.Minute {
			t.Errorf("unexpected defaults: limit=%d window=%v", cfg.Limit, cfg.Window)
		}
	})

	t.Run("Sub Second Window Rounds Up", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_WINDOW", "500ms")
		cfg := LoadRateLimitConfig()
		if cfg.Window != time.Second {
			t.Errorf("expected window clamped to 1s, got %v", cfg.Window)
		}
	})

	t.Run("Non Positive Values Are Clamped", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_MAX", "0")
		t.Setenv("RATE_LIMIT_WINDOW", "0s")
		cfg := LoadRateLimitConfig()
		if cfg.Limit != 1 {
			t.Errorf("expected limit clamped to 1, got %d", cfg.Limit)
		}
		if cfg.Window != time.Minute {
			t.Errorf("expected window defaulted to 1m, got %v", cfg.Window)
		}
	})
}
