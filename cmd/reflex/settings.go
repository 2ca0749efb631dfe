package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/reflex/internal/binding"
	"github.com/verte-zerg/reflex/internal/config"
	"github.com/verte-zerg/reflex/internal/logging"
	"github.com/verte-zerg/reflex/internal/model"
)

// quitKeys mirror the TUI quit binding.
var quitKeys = []string{"esc", "ctrl+c"}

// resolveSettings layers defaults, the config file, the environment and explicit flags.
func resolveSettings(cmd *cobra.Command) (model.Settings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return model.Settings{}, err
	}

	applyFloatConfig(cmd, "duration", &playDuration, fileCfg.Game.Duration)
	applyFloatConfig(cmd, "duration", &playDuration, envCfg.Duration)
	applySliceConfig(cmd, "device", &playDevices, fileCfg.Game.Devices)
	if len(envCfg.Devices) > 0 {
		applySliceConfig(cmd, "device", &playDevices, &envCfg.Devices)
	}
	applyStringConfig(cmd, "restart-key", &playRestartKey, fileCfg.Game.RestartKey)
	applyInt64Config(cmd, "seed", &playSeed, fileCfg.Game.Seed)
	applyFloatConfig(cmd, "haptic-low", &playHapticLow, fileCfg.Haptics.Low)
	applyFloatConfig(cmd, "haptic-high", &playHapticHigh, fileCfg.Haptics.High)
	applyFloatConfig(cmd, "haptic-duration", &playHapticSeconds, fileCfg.Haptics.Duration)
	applyBoolConfig(cmd, "beep", &playBeep, fileCfg.Haptics.Beep)
	applyBoolConfig(cmd, "beep", &playBeep, envCfg.HapticBeep)
	applyStringConfig(cmd, "log-level", &playLogLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-level", &playLogLevel, envCfg.LogLevel)

	return model.Settings{
		Duration:      playDuration,
		Devices:       playDevices,
		RestartKey:    playRestartKey,
		Seed:          playSeed,
		HapticLow:     playHapticLow,
		HapticHigh:    playHapticHigh,
		HapticSeconds: playHapticSeconds,
		HapticBeep:    playBeep,
		LogLevel:      playLogLevel,
		Icons:         promptIcons(fileCfg.Icons),
	}, nil
}

func promptIcons(icons map[string]string) map[model.PromptID]string {
	out := make(map[model.PromptID]string, len(icons))
	for id, glyph := range icons {
		out[model.PromptID(id)] = glyph
	}
	return out
}

func validateSettings(s model.Settings) error {
	if s.Duration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if s.HapticLow < 0 || s.HapticLow > 1 {
		return fmt.Errorf("--haptic-low must be between 0 and 1")
	}
	if s.HapticHigh < 0 || s.HapticHigh > 1 {
		return fmt.Errorf("--haptic-high must be between 0 and 1")
	}
	if s.HapticSeconds <= 0 || s.HapticSeconds > maxHapticSeconds {
		return fmt.Errorf("--haptic-duration must be in (0, %.0f]", maxHapticSeconds)
	}
	if s.RestartKey == "" {
		return fmt.Errorf("--restart-key must not be empty")
	}
	for _, quit := range quitKeys {
		if s.RestartKey == quit {
			return fmt.Errorf("--restart-key %q is reserved for quit", s.RestartKey)
		}
	}
	for family, bindings := range binding.DefaultTable {
		for _, b := range bindings {
			if b.Key == s.RestartKey {
				return fmt.Errorf("--restart-key %q is bound to %s button %s", s.RestartKey, family, b.Prompt)
			}
		}
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applySliceConfig(cmd *cobra.Command, name string, target, value *[]string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = append([]string(nil), (*value)...)
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# reflex configuration
# Uncomment a value to enable it. Environment variables (REFLEX_*) override the
# file and CLI flags override both.

[game]
# duration = %.1f          # Round length in seconds
# devices = ["xinput"]     # Controller names; empty probes %s
# restart-key = %q          # Key that restarts a finished round
# seed = 0                 # Prompt seed (0: random)

[haptics]
# low = %.2f               # Low motor intensity (0-1)
# high = %.2f              # High motor intensity (0-1)
# duration = %.2f          # Vibration length in seconds
# beep = true              # Beep on a wrong press

[log]
# level = %q           # debug, info, warn, error

[icons]
# GenericA = "A"           # Glyph shown for a prompt; "" hides it
`,
		defaultDuration,
		"/proc/bus/input/devices",
		defaultRestartKey,
		defaultHapticLow,
		defaultHapticHigh,
		defaultHapticSeconds,
		defaultLogLevel,
	)
}
