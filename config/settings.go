package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads the settings file (creating it with defaults on first run),
// then applies environment overrides.
func Load() (*Config, error) {
	settingsPath := GetSettingsFilePath()

	if !FileExists(settingsPath) {
		if err := createDefaultSettings(settingsPath); err != nil {
			return nil, fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	cfg, err := loadFromPath(settingsPath)
	if err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func loadFromPath(path string) (*Config, error) {
	cfg := Default()

	if !FileExists(path) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return cfg, nil
}

func createDefaultSettings(path string) error {
	if err := EnsureDir(GetConfigDir()); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// 0600 to match the rest of the config dir
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(Default()); err != nil {
		return fmt.Errorf("failed to encode default settings: %w", err)
	}

	return nil
}
