// Package xdg provides helpers to resolve XDG Base Directory paths for seedgen.
// It implements the XDG Base Directory specification for determining appropriate
// locations for configuration files, state data, and other application-specific
// directories on Unix-like systems.
//
// The package handles fallback to traditional locations when XDG environment
// variables are not set and ensures proper permissions for security-sensitive
// directories like configuration storage.
package xdg

import (
	"os"
	"path/filepath"
)

// appDir is the directory name used under each XDG base directory.
const appDir = "seedgen"

// ConfigDir returns the XDG config directory for seedgen.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/seedgen when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return resolve("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for seedgen.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/seedgen when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return resolve("XDG_STATE_HOME", ".local", "state")
}

// resolve joins the base directory from envVar (or the home-relative
// fallback) with the seedgen app dir and creates it with 0700.
func resolve(envVar string, fallback ...string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	dir := filepath.Join(base, appDir)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
