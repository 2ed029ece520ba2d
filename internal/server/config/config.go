// Package config handles configuration for the dev backend, including
// defaults, environment, a JSON overlay and command-line flags.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the FoodHub dev backend.
//
// Fields:
//   - Addr: HTTP bind address.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Empty means a random
//     key is generated at start-up, so tokens do not survive a restart.
//   - TokenValidity: lifetime of issued tokens.
//   - LogLevel / LogFormat: slog level and handler ("text" or "json").
//   - Menu: items returned by GET /food.
type Config struct {
	Addr          string        `env:"ADDR"`
	SecretKey     string        `env:"SECRET_KEY"`
	TokenValidity time.Duration `env:"TOKEN_VALIDITY"`
	LogLevel      string        `env:"LOG_LEVEL"`
	LogFormat     string        `env:"LOG_FORMAT"`
	Menu          []string      `env:"MENU" envSeparator:","`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = "127.0.0.1:8080"
	c.SecretKey = ""
	c.TokenValidity = 24 * time.Hour
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.Menu = []string{"Margherita Pizza", "Cheeseburger", "Caesar Salad", "Pad Thai", "Tiramisu"}
}

// LoadConfig builds a Config by applying defaults, then the environment, an
// optional JSON file and finally command-line flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
