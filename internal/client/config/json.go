package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/foodhub/internal/flagx"
)

// jsonConfig is the on-disk shape of the config file.
type jsonConfig struct {
	BaseURL      string         `json:"base_url"`
	DatabasePath string         `json:"database_path"`
	LogLevel     string         `json:"log_level"`
	LogFormat    string         `json:"log_format"`
	CallbackAddr string         `json:"callback_addr"`
	Google       GoogleConfig   `json:"google"`
	Facebook     FacebookConfig `json:"facebook"`
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

	setIfNotEmpty(&cfg.BaseURL, jc.BaseURL)
	setIfNotEmpty(&cfg.DatabasePath, jc.DatabasePath)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, jc.LogFormat)
	setIfNotEmpty(&cfg.CallbackAddr, jc.CallbackAddr)
	setIfNotEmpty(&cfg.Google.ClientID, jc.Google.ClientID)
	setIfNotEmpty(&cfg.Google.ClientSecret, jc.Google.ClientSecret)
	setIfNotEmpty(&cfg.Google.Issuer, jc.Google.Issuer)
	setIfNotEmpty(&cfg.Facebook.AppID, jc.Facebook.AppID)
	setIfNotEmpty(&cfg.Facebook.AppSecret, jc.Facebook.AppSecret)

	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
