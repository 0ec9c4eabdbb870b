// Package config loads application configuration from environment
// variables.
package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

type Config struct {
	Port        string        `env:"PORT" envDefault:"3000"`
	DatabaseURL string        `env:"DATABASE_URL,required"`
	JWTSecret   string        `env:"JWT_SECRET,required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`

	// Comma-separated list of extra CORS origins
	ExtraOrigins string `env:"ALLOWED_ORIGINS" envDefault:""`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AllowedOrigins returns the development defaults plus any origins
// configured through ALLOWED_ORIGINS.
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
