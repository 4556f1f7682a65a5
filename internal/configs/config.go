package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultTooltip         = "envtray"
	DefaultCategory        = "Uncategorized"
	DefaultUpdatesRepo     = "PolarWolf314/envtray"
	defaultExportDirectory = "envtray-exports"
)

type Config struct {
	Store   StoreConfig   `toml:"store"`
	Export  ExportConfig  `toml:"export"`
	Tray    TrayConfig    `toml:"tray"`
	Updates UpdatesConfig `toml:"updates"`
}

type StoreConfig struct {
	Path string `toml:"path"`
}

type ExportConfig struct {
	Dir string `toml:"dir"`
}

type TrayConfig struct {
	Tooltip         string `toml:"tooltip"`
	Title           string `toml:"title"`
	DefaultCategory string `toml:"default_category"`
}

type UpdatesConfig struct {
	Repo  string `toml:"repo"`
	Check *bool  `toml:"check,omitempty"`
}

// CheckEnabled reports whether update checks are on. Unset means on.
func (u UpdatesConfig) CheckEnabled() bool {
	return u.Check == nil || *u.Check
}

// Defaults returns the configuration used when config.toml is absent.
func Defaults(settings *UserSettings) *Config {
	check := true
	return &Config{
		Store:   StoreConfig{Path: settings.StorePath},
		Export:  ExportConfig{Dir: filepath.Join(settings.HomeDir, defaultExportDirectory)},
		Tray:    TrayConfig{Tooltip: DefaultTooltip, DefaultCategory: DefaultCategory},
		Updates: UpdatesConfig{Repo: DefaultUpdatesRepo, Check: &check},
	}
}

// LoadConfig reads config.toml for the given settings. A missing file yields
// the defaults; present keys override them.
func LoadConfig(settings *UserSettings) (*Config, error) {
	config := Defaults(settings)

	if _, err := os.Stat(settings.ConfigPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(settings.ConfigPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config.fillDefaults(Defaults(settings))
	config.Store.Path = expandHome(config.Store.Path, settings.HomeDir)
	config.Export.Dir = expandHome(config.Export.Dir, settings.HomeDir)
	return config, nil
}

// Load reads the configuration of the current user.
func Load() (*Config, error) {
	return LoadConfig(UserEnvtraySettings)
}

// SaveConfig writes config to the settings' config.toml.
func SaveConfig(settings *UserSettings, config *Config) error {
	if err := SaveTOML(settings.ConfigPath, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// An explicit empty string in the file is treated as unset.
func (c *Config) fillDefaults(d *Config) {
	if c.Store.Path == "" {
		c.Store.Path = d.Store.Path
	}
	if c.Export.Dir == "" {
		c.Export.Dir = d.Export.Dir
	}
	if c.Tray.Tooltip == "" {
		c.Tray.Tooltip = d.Tray.Tooltip
	}
	if c.Tray.DefaultCategory == "" {
		c.Tray.DefaultCategory = d.Tray.DefaultCategory
	}
	if c.Updates.Repo == "" {
		c.Updates.Repo = d.Updates.Repo
	}
	if c.Updates.Check == nil {
		c.Updates.Check = d.Updates.Check
	}
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}
