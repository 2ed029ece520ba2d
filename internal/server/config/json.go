package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/foodhub/internal/flagx"
)

// jsonConfig is the on-disk shape of the config file. Durations are written
// the way time.ParseDuration reads them, e.g. "24h".
type jsonConfig struct {
	Addr          string   `json:"addr"`
	SecretKey     string   `json:"secret_key"`
	TokenValidity string   `json:"token_validity"`
	LogLevel      string   `json:"log_level"`
	LogFormat     string   `json:"log_format"`
	Menu          []string `json:"menu"`
}

// parseJSON overlays cfg with the file named by -c/-config. Without such a
// flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.TokenValidity != "" {
		d, err := time.ParseDuration(jc.TokenValidity)
		if err != nil {
			return fmt.Errorf("token_validity: %w", err)
		}
		cfg.TokenValidity = d
	}

	setIfNotEmpty(&cfg.Addr, jc.Addr)
	setIfNotEmpty(&cfg.SecretKey, jc.SecretKey)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, jc.LogFormat)
	if len(jc.Menu) > 0 {
		cfg.Menu = jc.Menu
	}

	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
