package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up next to the resources.
const FileName = "svinstall.yaml"

// Config captures the installer configuration.
type Config struct {
	Version     int            `yaml:"version"`
	GamePath    string         `yaml:"game_path"`
	ResourceDir string         `yaml:"resource_dir"`
	SMAPI       SMAPIConfig    `yaml:"smapi"`
	Mods        ModsConfig     `yaml:"mods"`
	Stardrop    StardropConfig `yaml:"stardrop"`
}

// SMAPIConfig controls the SMAPI install step.
type SMAPIConfig struct {
	// AutoConfirm starts the external installer without asking first.
	AutoConfirm bool `yaml:"auto_confirm"`
}

// ModsConfig controls mod copy/removal behaviour.
type ModsConfig struct {
	// Force replaces existing mod folders without asking.
	Force bool `yaml:"force"`
}

// StardropConfig controls the Stardrop install step.
type StardropConfig struct {
	// Reextract overwrites an existing Stardrop install instead of skipping.
	Reextract bool  `yaml:"reextract"`
	Shortcut  *bool `yaml:"shortcut,omitempty"`
}

// ShortcutValue returns the effective shortcut flag applying defaults.
func (s StardropConfig) ShortcutValue() bool {
	if s.Shortcut == nil {
		return true
	}
	return *s.Shortcut
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
		Stardrop: StardropConfig{
			Shortcut: boolPtr(true),
		},
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults ensures fields fall back to sensible defaults when the YAML
// omits them.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Stardrop.Shortcut == nil {
		c.Stardrop.Shortcut = boolPtr(true)
	}
}

// Marshal returns the YAML encoding of the configuration.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}

func boolPtr(v bool) *bool {
	return &v
}
