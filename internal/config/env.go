package config

import (
	"fmt"
	"os"
	"strconv"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TODAY_FILE"); v != "" {
		cfg.StoreFile = v
	}
	if v := os.Getenv("TODAY_ROOT"); v != "" {
		cfg.RootDir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if os.Getenv("NO_OPEN") == "1" {
		cfg.NoOpen = true
	}
	if v := os.Getenv("DEBUG"); v != "" {
		if dbg, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = dbg
		}
	}
	return nil
}
