// Package config loads the astdump configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "ASTDUMP_CONFIG"

// Output formats of the render command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTree = "tree"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config holds the complete tool configuration
type Config struct {
	Render RenderConfig `toml:"render"`
	Log    LogConfig    `toml:"log"`
}

// RenderConfig holds tree output settings
type RenderConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// LogConfig holds diagnostic logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s in %s", ErrInvalid, undecoded[0], path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by ASTDUMP_CONFIG, or the first file
// found in the default locations. Without any file the defaults are used.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./astdump.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "astdump", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Render.Format == "" {
		c.Render.Format = FormatText
	}
	if c.Render.Color == "" {
		c.Render.Color = ColorAuto
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	c.Render.Format = strings.ToLower(c.Render.Format)
	c.Render.Color = strings.ToLower(c.Render.Color)
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
}

// Validate checks that every setting holds a known value.
func (c *Config) Validate() error {
	checks := []struct {
		key   string
		value string
		valid []string
	}{
		{"render.format", c.Render.Format, []string{FormatText, FormatJSON, FormatTree}},
		{"render.color", c.Render.Color, []string{ColorAuto, ColorAlways, ColorNever}},
		{"log.level", c.Log.Level, []string{"debug", "info", "warn", "error"}},
		{"log.format", c.Log.Format, []string{"text", "json"}},
	}
	for _, chk := range checks {
		if !oneOf(chk.value, chk.valid) {
			return fmt.Errorf("%w: %s = %q, want one of %s",
				ErrInvalid, chk.key, chk.value, strings.Join(chk.valid, ", "))
		}
	}
	return nil
}

func oneOf(s string, list []string) bool {
	for _, v := range list {
		if s == v {
			return true
		}
	}
	return false
}
