package config

import (
	"fmt"
	"os"
)

// GoogleConfig holds the OAuth client registered with Google.
type GoogleConfig struct {
	ClientID     string `env:"CLIENT_ID"     json:"client_id"`
	ClientSecret string `env:"CLIENT_SECRET" json:"client_secret"`
	Issuer       string `env:"ISSUER"        json:"issuer"`
}

// FacebookConfig holds the Facebook app credentials.
type FacebookConfig struct {
	AppID     string `env:"APP_ID"     json:"app_id"`
	AppSecret string `env:"APP_SECRET" json:"app_secret"`
}

// Config holds runtime settings for the FoodHub client.
//
// Fields:
//   - BaseURL: scheme://host:port of the FoodHub backend.
//   - DatabasePath: SQLite file holding the session token.
//   - LogLevel / LogFormat: slog level and handler ("text" or "json").
//   - CallbackAddr: host:port the social login redirect listener binds to.
//   - Google / Facebook: provider credentials for social login.
type Config struct {
	BaseURL      string         `env:"BASE_URL"`
	DatabasePath string         `env:"DATABASE_PATH"`
	LogLevel     string         `env:"LOG_LEVEL"`
	LogFormat    string         `env:"LOG_FORMAT"`
	CallbackAddr string         `env:"CALLBACK_ADDR"`
	Google       GoogleConfig   `envPrefix:"GOOGLE_"`
	Facebook     FacebookConfig `envPrefix:"FACEBOOK_"`
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "foodhub.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.CallbackAddr = "127.0.0.1:8765"
	c.Google.Issuer = "https://accounts.google.com"
}

// LoadConfig constructs a Config from defaults, environment, an optional
// JSON file and flags, in that order.
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
