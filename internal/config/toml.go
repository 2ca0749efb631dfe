// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game    GameConfig        `toml:"game"`
	Haptics HapticsConfig     `toml:"haptics"`
	Log     LogConfig         `toml:"log"`
	Icons   map[string]string `toml:"icons"`
}

// GameConfig maps session-related settings.
type GameConfig struct {
	Duration   *float64  `toml:"duration"`
	Devices    *[]string `toml:"devices"`
	RestartKey *string   `toml:"restart-key"`
	Seed       *int64    `toml:"seed"`
}

// HapticsConfig maps vibration settings.
type HapticsConfig struct {
	Low      *float64 `toml:"low"`
	High     *float64 `toml:"high"`
	Duration *float64 `toml:"duration"`
	Beep     *bool    `toml:"beep"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
