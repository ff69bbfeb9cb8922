//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"enlarger/app"
	"enlarger/hal"
	"enlarger/internal/buildinfo"
	"enlarger/internal/config"
)

type options struct {
	headless   bool
	term       bool
	fast       bool
	hz         int
	ticks      uint64
	scriptPath string
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	rootCmd := &cobra.Command{
		Use:          "enlarger",
		Short:        "Enlarger exposure timer simulator",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.headless, "headless", false, "run without a window, logging LCD frames")
	flags.BoolVar(&opts.term, "term", false, "run in the terminal")
	flags.BoolVar(&opts.fast, "fast", false, "headless: run ticks back to back on the virtual clock")
	flags.IntVar(&opts.hz, "hz", 100, "poll rate in headless and terminal mode")
	flags.Uint64Var(&opts.ticks, "ticks", 0, "headless: stop after N ticks (0 = run forever)")
	flags.StringVar(&opts.scriptPath, "script", "", "headless: YAML input script")
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/enlarger/config.toml)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func run(cmd *cobra.Command, opts options) error {
	if opts.headless && opts.term {
		return fmt.Errorf("--headless and --term are mutually exclusive")
	}

	cfg, err := loadAppConfig(opts.configPath)
	if err != nil {
		return err
	}
	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	switch {
	case opts.headless:
		hc := hal.HeadlessConfig{
			Hz:    opts.hz,
			Ticks: opts.ticks,
			Fast:  opts.fast,
			Out:   cmd.OutOrStdout(),
		}
		if opts.scriptPath != "" {
			script, err := hal.LoadScript(opts.scriptPath)
			if err != nil {
				return err
			}
			hc.Script = script
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hc); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	case opts.term:
		return hal.RunTerminal(newApp, opts.hz)
	default:
		err := hal.RunWindow(newApp)
		if errors.Is(err, hal.ErrNoWindow) {
			fmt.Fprintln(cmd.ErrOrStderr(), "no window support in this build, using the terminal")
			return hal.RunTerminal(newApp, opts.hz)
		}
		return err
	}
}

func loadAppConfig(path string) (app.Config, error) {
	cfg := app.DefaultConfig()
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fc, err := config.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	if err := fc.Apply(&cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Write a commented config file if none exists and print its path",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}

func defaultConfigTemplate() string {
	d := app.DefaultConfig()
	return fmt.Sprintf(`# enlarger timer configuration
# Uncomment a value to enable it.

[timer]
# base = %.1f          # Base exposure in seconds
# burn = %.1f           # Initial burn in stops
# steps = %d            # Test strip count (odd, 3-21)
# interval = %.1f       # Test strip interval in stops
# debounce = %q     # Button debounce window

[display]
# splash = %q          # Splash screen duration
# backlight = "#%02X%02X%02X" # Backlight colour
`,
		d.Timer.Base,
		d.Timer.Burn,
		d.Timer.Steps,
		d.Timer.Interval,
		d.Debounce.String(),
		d.Splash.String(),
		d.Backlight.R, d.Backlight.G, d.Backlight.B,
	)
}
