package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPath expands environment variables and a leading ~ in paths.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if expanded == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return home
	}
	if strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, expanded[2:])
	}
	return expanded
}
