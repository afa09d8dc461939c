package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "pandata"

	// TermsDBFile is the name of the SQLite file with cached terms.
	TermsDBFile = "terms.db"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/pandata by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/pandata by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/pandata/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/pandata/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// TermsDBPath returns the full path to the terms cache database.
// Returns ~/.cache/pandata/terms.db by default.
func TermsDBPath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), TermsDBFile)
}
