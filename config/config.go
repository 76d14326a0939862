package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Backend names accepted in configuration
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config holds CLI settings; zero Width/Height means detect from the terminal
type Config struct {
	Backend    string   `toml:"backend"`
	Color      string   `toml:"color"`
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	HideCursor bool     `toml:"hide_cursor"`
	Hold       Duration `toml:"hold"`
	Debug      bool     `toml:"debug"`
}

// Duration decodes TOML strings like "1.5s"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Backend:    BackendANSI,
		Color:      "truecolor",
		HideCursor: true,
	}
}

// Load reads path over the defaults; unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated fields and dimensions
func (c Config) Validate() error {
	var errs []error
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		errs = append(errs, fmt.Errorf("backend %q: want %s or %s", c.Backend, BackendANSI, BackendTcell))
	}
	switch strings.ToLower(c.Color) {
	case "auto", "truecolor", "true", "24bit", "256":
	default:
		errs = append(errs, fmt.Errorf("color %q: want auto, truecolor or 256", c.Color))
	}
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("negative size %dx%d", c.Width, c.Height))
	}
	if c.Hold.Duration < 0 {
		errs = append(errs, fmt.Errorf("negative hold %v", c.Hold.Duration))
	}
	return errors.Join(errs...)
}
