package config

// Redis backs the response cache and the rate limiter. Both degrade
// gracefully when no server is reachable: the middleware becomes a
// pass-through instead of failing requests.

import (
	"context"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/redis/go-redis/v9"
)

// RedisConfig holds connection settings for the Redis server.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadRedisConfig parses Redis settings from the environment.
func LoadRedisConfig() RedisConfig {
	cfg := RedisConfig{}
	_ = env.Parse(&cfg)
	return cfg
}

// NewRedisClient connects to Redis and verifies the connection with a short
// ping. It returns nil when the server is unreachable so callers can
// disable caching and rate limiting instead of crashing.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
