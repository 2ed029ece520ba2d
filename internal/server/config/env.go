package config

import "github.com/caarlos0/env/v11"

const envPrefix = "FOODHUB_SERVER_"

// parseEnv overlays FOODHUB_SERVER_* variables. Unset variables keep the
// current value.
func parseEnv(cfg *Config) error {
	return env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
}
