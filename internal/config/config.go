// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds the core runtime configuration. Each field corresponds to an
// environment variable. Error responses include diagnostic detail only when
// Env is "dev".
type Config struct {
	Env           string // application environment ("dev", "prod")
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	JWTSecret     string // secret used to sign admin JWTs
	AdminUser     string // admin login username
	AdminPassword string // admin login password, hashed with bcrypt at startup
	AccessTTLMin  int    // admin token time-to-live in minutes
	BcryptCost    int    // bcrypt cost for hashing the admin password
}

// Load reads configuration values from environment variables. Required
// variables are enforced by must(); missing values exit with a fatal log
// message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		JWTSecret:     must("JWT_SECRET"),
		AdminUser:     must("ADMIN_USER"),
		AdminPassword: must("ADMIN_PASSWORD"),
		AccessTTLMin:  intOr("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:    intOr("BCRYPT_COST", 10),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// intOr retrieves an optional integer environment variable with a default.
// An unparseable value is fatal rather than silently defaulted.
func intOr(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
