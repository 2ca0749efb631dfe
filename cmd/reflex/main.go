// Package main provides the CLI entrypoint for reflex.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/reflex/internal/assets"
	"github.com/verte-zerg/reflex/internal/binding"
	"github.com/verte-zerg/reflex/internal/config"
	"github.com/verte-zerg/reflex/internal/device"
	"github.com/verte-zerg/reflex/internal/generator"
	"github.com/verte-zerg/reflex/internal/haptics"
	"github.com/verte-zerg/reflex/internal/logging"
	"github.com/verte-zerg/reflex/internal/session"
	"github.com/verte-zerg/reflex/internal/tui"
)

const (
	defaultDuration      = 20.0
	defaultRestartKey    = "r"
	defaultHapticLow     = 0.5
	defaultHapticHigh    = 0.5
	defaultHapticSeconds = 0.2
	defaultLogLevel      = "info"
	maxHapticSeconds     = 5.0
)

var (
	playDuration      float64
	playDevices       []string
	playRestartKey    string
	playSeed          int64
	playHapticLow     float64
	playHapticHigh    float64
	playHapticSeconds float64
	playBeep          bool
	playLogLevel      string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "reflex",
		Short:         "Terminal button reaction game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().Float64Var(&playDuration, "duration", defaultDuration, "round length in seconds")
	rootCmd.Flags().StringSliceVar(&playDevices, "device", nil, "controller names to use instead of probing (e.g. xinput,sony)")
	rootCmd.Flags().StringVar(&playRestartKey, "restart-key", defaultRestartKey, "key that restarts a finished round")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "prompt seed (0: random)")
	rootCmd.Flags().Float64Var(&playHapticLow, "haptic-low", defaultHapticLow, "low motor intensity on a wrong press (0-1)")
	rootCmd.Flags().Float64Var(&playHapticHigh, "haptic-high", defaultHapticHigh, "high motor intensity on a wrong press (0-1)")
	rootCmd.Flags().Float64Var(&playHapticSeconds, "haptic-duration", defaultHapticSeconds, "vibration length in seconds")
	rootCmd.Flags().BoolVar(&playBeep, "beep", true, "beep on a wrong press")
	rootCmd.Flags().StringVar(&playLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDevicesCmd())
	rootCmd.AddCommand(newBindingsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if err := validateSettings(settings); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("reflex needs an interactive terminal")
	}

	logger, closer, err := logging.New(config.DefaultLogPath(), settings.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	gen := generator.New()
	if settings.Seed != 0 {
		gen = generator.NewWithSeed(settings.Seed)
	}
	opts := session.Options{
		Settings:  settings,
		Table:     binding.DefaultTable,
		Detector:  device.NewDetector(deviceLister(settings.Devices)),
		Icons:     assets.NewIconSet(settings.Icons),
		Generator: gen,
		Logger:    logger,
	}
	rumble := haptics.New(settings.HapticBeep, logger)
	m := tui.NewModel(opts, settings.RestartKey, rumble)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func deviceLister(names []string) device.Lister {
	if len(names) > 0 {
		return device.StaticLister(names)
	}
	return device.ProcLister{}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List connected controllers and their families",
		Args:  cobra.NoArgs,
		RunE:  runDevicesCmd,
	}
}

func runDevicesCmd(_ *cobra.Command, _ []string) error {
	lister := device.ProcLister{}
	names, err := lister.ListDevices()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		pterm.Warning.Println("No controllers detected. Name one with: reflex --device xinput")
		return nil
	}
	detector := device.NewDetector(lister)
	data := pterm.TableData{{"Device", "Family"}}
	for _, name := range names {
		family, ok := detector.Classify(name)
		label := string(family)
		if !ok {
			label = "unsupported"
		}
		data = append(data, []string{name, label})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func newBindingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bindings",
		Short: "Show the key bound to every button prompt",
		Args:  cobra.NoArgs,
		RunE:  runBindingsCmd,
	}
}

func runBindingsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	icons := assets.NewIconSet(promptIcons(fileCfg.Icons))
	for _, line := range binding.Listing(binding.DefaultTable, icons.IconFor) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
