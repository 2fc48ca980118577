// Package config loads server configuration from the environment
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/firetop/gamebook-api/internal/errors"
)

// Config is the full server configuration
type Config struct {
	// ListenAddr is where the HTTP server binds
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// RedisEndpoint is the host:port of the Redis instance holding
	// player records
	RedisEndpoint string `env:"REDIS_ENDPOINT" envDefault:"localhost:6379"`
	RedisUseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	// StoryPath and TextsPath locate the narrative dataset
	StoryPath string `env:"STORY_PATH" envDefault:"data/adventure.json"`
	TextsPath string `env:"TEXTS_PATH" envDefault:"data/texts.json"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return cfg, nil
}
