// Package config loads chameleon's settings.
//
// Settings come from built-in defaults, then ~/.chameleon/config.toml (or an
// explicit path), then CHAMELEON_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/chameleon/internal/intent"
	"github.com/idilsaglam/chameleon/internal/model"
	"github.com/idilsaglam/chameleon/internal/session"
)

const (
	dirName  = ".chameleon"
	fileName = "config.toml"
)

// Colour policies for UIConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the complete configuration.
type Config struct {
	DisplayMode string       `toml:"display_mode"`
	SeedPhrase  string       `toml:"seed_phrase"`
	LogFile     string       `toml:"log_file"`
	Timing      TimingConfig `toml:"timing"`
	UI          UIConfig     `toml:"ui"`
}

// TimingConfig holds the submit cycle delays in milliseconds.
type TimingConfig struct {
	ThinkingMS    int `toml:"thinking_ms"`
	RecalibrateMS int `toml:"recalibrate_ms"`
	RefreshMS     int `toml:"refresh_ms"`
}

type UIConfig struct {
	// Color is "auto", "always" or "never".
	Color         string `toml:"color"`
	ShowConsole   bool   `toml:"show_console"`
	AmbientEmojis bool   `toml:"ambient_emojis"`
}

func Default() *Config {
	d := session.DefaultDelays()
	return &Config{
		DisplayMode: string(model.Dark),
		SeedPhrase:  intent.SeedPhrase,
		Timing: TimingConfig{
			ThinkingMS:    int(d.Thinking / time.Millisecond),
			RecalibrateMS: int(d.Recalibrate / time.Millisecond),
			RefreshMS:     int(d.Refresh / time.Millisecond),
		},
		UI: UIConfig{
			Color:         ColorAuto,
			ShowConsole:   true,
			AmbientEmojis: true,
		},
	}
}

// DefaultPath is ~/.chameleon/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName, fileName), nil
}

// Load reads the file at path, or the default path when path is empty, on
// top of the defaults and applies environment overrides. A missing default
// file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if cfg, err = Decode(string(data)); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML text on top of the defaults.
func Decode(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides fields from CHAMELEON_* variables found through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv("CHAMELEON_DISPLAY_MODE")); v != "" {
		c.DisplayMode = v
	}
	if v := getenv("CHAMELEON_SEED"); v != "" {
		c.SeedPhrase = v
	}
	if v := strings.TrimSpace(getenv("CHAMELEON_COLOR")); v != "" {
		c.UI.Color = v
	}
	if v := strings.TrimSpace(getenv("CHAMELEON_LOG_FILE")); v != "" {
		c.LogFile = v
	}
}

// ValidationError is one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string { return e.Field + ": " + e.Message }

// ValidationErrors collects every invalid field.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

func (c *Config) Validate() error {
	var errs ValidationErrors
	if _, err := model.ParseDisplayMode(c.DisplayMode); err != nil {
		errs = append(errs, ValidationError{"display_mode", err.Error()})
	}
	switch c.UI.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, ValidationError{"ui.color", fmt.Sprintf("unknown policy %q (want auto, always or never)", c.UI.Color)})
	}
	for _, f := range []struct {
		name string
		ms   int
	}{
		{"timing.thinking_ms", c.Timing.ThinkingMS},
		{"timing.recalibrate_ms", c.Timing.RecalibrateMS},
		{"timing.refresh_ms", c.Timing.RefreshMS},
	} {
		if f.ms <= 0 {
			errs = append(errs, ValidationError{f.name, "must be positive"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Mode is the validated display mode, dark when invalid.
func (c *Config) Mode() model.DisplayMode {
	m, _ := model.ParseDisplayMode(c.DisplayMode)
	return m
}

func (c *Config) Delays() session.Delays {
	return session.Delays{
		Thinking:    time.Duration(c.Timing.ThinkingMS) * time.Millisecond,
		Recalibrate: time.Duration(c.Timing.RecalibrateMS) * time.Millisecond,
		Refresh:     time.Duration(c.Timing.RefreshMS) * time.Millisecond,
	}
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
