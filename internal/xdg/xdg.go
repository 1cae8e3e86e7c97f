// Package xdg resolves XDG Base Directory paths for webhooktask.
// It implements the XDG Base Directory specification for locating the user's
// configuration file, falling back to the traditional ~/.config location when
// XDG_CONFIG_HOME is not set.
//
// Lookups never create directories: the CLI only reads configuration.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "webhooktask"

// ConfigDir returns the XDG config directory for webhooktask.
// It falls back to ~/.config/webhooktask when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

// ConfigFile returns the path of the default config file.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
