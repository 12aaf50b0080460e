package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load builds the configuration: defaults overridden by the file at path.
// An empty path falls back to the standard locations; a missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Reload re-reads tuning from path into a fresh config. Used by the
// fsnotify-driven hot reload.
func Reload(path string) (*Config, error) {
	return Load(path)
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) validate() error {
	if c.Game.Variant != "tilt" && c.Game.Variant != "thrust" {
		return fmt.Errorf("config: unknown variant %q", c.Game.Variant)
	}
	if c.Game.MultiplierBands < 1 {
		return fmt.Errorf("config: multiplier_bands must be >= 1, got %d", c.Game.MultiplierBands)
	}
	if c.Game.MaxMultiplier < 1 {
		return fmt.Errorf("config: max_multiplier must be >= 1, got %d", c.Game.MaxMultiplier)
	}
	if c.Spawner.IntervalDecay <= 0 || c.Spawner.IntervalDecay > 1 {
		return fmt.Errorf("config: interval_decay must be in (0, 1], got %v", c.Spawner.IntervalDecay)
	}
	if c.Spawner.MinInterval <= 0 || c.Spawner.BaseInterval < c.Spawner.MinInterval {
		return fmt.Errorf("config: spawn intervals invalid: base=%v min=%v", c.Spawner.BaseInterval, c.Spawner.MinInterval)
	}
	return nil
}

// findConfigFile looks for config in the working directory, then the OS
// config directory.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(Dir(), "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Dir returns the OS-appropriate config directory.
func Dir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "tiltfall")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "tiltfall")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "tiltfall")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "tiltfall")
	}
}
