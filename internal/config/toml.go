// Package config reads the optional TOML settings file and overlays it on the
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"enlarger/app"
)

// FileConfig represents the TOML configuration file. Nil fields are unset.
type FileConfig struct {
	Timer   TimerConfig   `toml:"timer"`
	Display DisplayConfig `toml:"display"`
}

// TimerConfig maps the exposure defaults.
type TimerConfig struct {
	Base     *float64 `toml:"base"`
	Burn     *float64 `toml:"burn"`
	Steps    *int     `toml:"steps"`
	Interval *float64 `toml:"interval"`
	Debounce *string  `toml:"debounce"`
}

// DisplayConfig maps the panel settings.
type DisplayConfig struct {
	Splash    *string `toml:"splash"`
	Backlight *string `toml:"backlight"`
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

// Apply overlays the set fields on cfg. Timer values are normalized the way
// the editor would.
func (f FileConfig) Apply(cfg *app.Config) error {
	t := f.Timer
	if t.Base != nil {
		if *t.Base <= 0 {
			return fmt.Errorf("timer.base must be positive, got %v", *t.Base)
		}
		cfg.Timer.Base = *t.Base
	}
	if t.Burn != nil {
		cfg.Timer.Burn = *t.Burn
	}
	if t.Steps != nil {
		cfg.Timer.Steps = *t.Steps
	}
	if t.Interval != nil {
		cfg.Timer.Interval = *t.Interval
	}
	cfg.Timer = cfg.Timer.Normalize()

	if t.Debounce != nil {
		d, err := parsePositiveDuration("timer.debounce", *t.Debounce)
		if err != nil {
			return err
		}
		cfg.Debounce = d
	}

	d := f.Display
	if d.Splash != nil {
		v, err := time.ParseDuration(*d.Splash)
		if err != nil || v < 0 {
			return fmt.Errorf("display.splash: invalid duration %q", *d.Splash)
		}
		cfg.Splash = v
	}
	if d.Backlight != nil {
		rgb, err := ParseColor(*d.Backlight)
		if err != nil {
			return fmt.Errorf("display.backlight: %w", err)
		}
		cfg.Backlight = rgb
	}
	return nil
}

func parsePositiveDuration(key, s string) (time.Duration, error) {
	v, err := time.ParseDuration(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, s)
	}
	return v, nil
}

// ParseColor parses "#RRGGBB" or "RRGGBB".
func ParseColor(s string) (app.RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return app.RGB{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return app.RGB{}, fmt.Errorf("invalid colour %q", s)
	}
	return app.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
