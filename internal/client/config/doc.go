// Package config loads runtime configuration for the FoodHub terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory (if any) and FOODHUB_* environment
//     variables (see parseEnv).
//  3. Optional JSON file selected with -c or -config (see parseJSON).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the FoodHub backend
//	-d string   path of the local session database
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "base_url": "http://127.0.0.1:8080",
//	  "database_path": "foodhub.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "callback_addr": "127.0.0.1:8765",
//	  "google": {"client_id": "...", "client_secret": "...", "issuer": "https://accounts.google.com"},
//	  "facebook": {"app_id": "...", "app_secret": "..."}
//	}
//
// Empty JSON values leave the earlier value in place.
package config
