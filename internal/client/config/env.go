package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "FOODHUB_"

// parseEnv loads .env (when present) and overlays FOODHUB_* variables.
// Variables that are not set keep the current value.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("load .env file: %w", err)
		}
	}

	return env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
}
