package common

import (
	"os"
	"path/filepath"
)

const (
	// AppName names the config directory and prefixes log lines.
	AppName = "tasktide"

	// ConfigFileName is the base name of the config file, without extension.
	ConfigFileName = "config"

	// ConfigFileType is the format of the config file.
	ConfigFileType = "yaml"

	// DatabaseFileName is the default sqlite file inside ConfigDir.
	DatabaseFileName = "tasks.db"
)

// ConfigDir returns ~/.config/tasktide. It falls back to the working
// directory when the home directory cannot be determined.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+AppName)
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultConfigPath returns the config file used when --config is not given.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName+"."+ConfigFileType)
}

// DefaultDatabasePath returns the database used when none is configured.
func DefaultDatabasePath() string {
	return filepath.Join(ConfigDir(), DatabaseFileName)
}
