package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// EnvConfig holds overrides read from REFLEX_* environment variables.
// Nil fields were not set.
type EnvConfig struct {
	Duration   *float64 `env:"REFLEX_DURATION"`
	Devices    []string `env:"REFLEX_DEVICES" envSeparator:","`
	LogLevel   *string  `env:"REFLEX_LOG_LEVEL"`
	HapticBeep *bool    `env:"REFLEX_HAPTICS_BEEP"`
}

// LoadEnv parses the environment overrides.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
