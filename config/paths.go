package config

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the directory holding the settings file and debug
// log, creating nothing.
func GetConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ".toolchat"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "toolchat")
}

func GetSettingsFilePath() string {
	return filepath.Join(GetConfigDir(), "settings.toml")
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0700)
}
