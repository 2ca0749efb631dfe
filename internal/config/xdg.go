// Package config provides XDG path helpers.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "reflex"

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "config.toml")
}

// DefaultLogPath returns the path of the rotating log file.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, appDir, "reflex.log")
}
