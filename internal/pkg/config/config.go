package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSOrigins lists the frontend origins allowed to call the API with
	// credentials. Comma-separated in the environment.
	CORSOrigins []string `env:"CORS_ORIGINS"`

	// DataSeed drives the randomised parts of the seed data set; a fixed
	// value reproduces the same posts and comments every start.
	DataSeed int64 `env:"DATA_SEED, default=1"`
}

// defaultCORSOrigins covers the usual local frontend dev servers.
var defaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://localhost:3001",
}

// Production reports whether the service runs in production mode (secure
// cookies on).
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = defaultCORSOrigins
	}
	return &cfg
}
