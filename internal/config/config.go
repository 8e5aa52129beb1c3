// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the Gemini API key and database
// DSN go to the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"seedgen/cli/internal/xdg"
)

// Default values applied when no config file exists.
const (
	DefaultDialect = "mysql"
	DefaultModel   = "gemini-2.5-flash"
	DefaultPrefix  = "seed_output"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	Dialect      string `json:"dialect"`
	Model        string `json:"model"`
	OutputPrefix string `json:"output_prefix"`
	UseUUID      bool   `json:"use_uuid"`
	IncludeRoles bool   `json:"include_roles"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		Dialect:      DefaultDialect,
		Model:        DefaultModel,
		OutputPrefix: DefaultPrefix,
		UseUUID:      true,
	}
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	p, err := path()
	if err != nil {
		return Defaults(), err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), err
	}
	c := Defaults()
	if err := json.Unmarshal(data, &c); err != nil {
		return Defaults(), err
	}
	if c.Dialect == "" {
		c.Dialect = DefaultDialect
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.OutputPrefix == "" {
		c.OutputPrefix = DefaultPrefix
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
