package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Config holds everything the process reads from the environment.
type Config struct {
	MongoURI      string
	MongoDatabase string
	Port          string
	LogLevel      string
	AllowOrigins  []string
}

// Load reads and validates the environment. The connection string must
// reference the configured database so the API can never start against the
// wrong one.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: os.Getenv("MONGO_DATABASE"),
		Port:          os.Getenv("API_PORT"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}
	if cfg.MongoDatabase == "" {
		return nil, errors.New("MONGO_DATABASE is not set")
	}
	if !strings.Contains(cfg.MongoURI, cfg.MongoDatabase) {
		return nil, fmt.Errorf("MONGO_URI does not reference database %q", cfg.MongoDatabase)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	origins := os.Getenv("CORS_ALLOW_ORIGINS")
	if origins == "" {
		cfg.AllowOrigins = []string{"*"}
	} else {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	}

	return cfg, nil
}
