// Package config manages spriteit's two pieces of persisted state: a
// small user-level config file in the home config directory and a marker
// file inside each enlisted repository's .git directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Env var overriding the config directory. Used by tests to keep runs
// away from the real home directory.
const configDirEnv = "SPRITEIT_CONFIG_DIR"

// UserConfig holds the user-level settings, including the one previously
// enlisted folder that commands fall back to when run outside a
// repository.
type UserConfig struct {
	RememberedRepo string `mapstructure:"remembered_repo"`
	DefaultRemote  string `mapstructure:"default_remote"`
	HistoryLimit   int    `mapstructure:"history_limit"`
	OpenCommand    string `mapstructure:"open_command"`

	v *viper.Viper
}

// ConfigDir returns the directory holding the user config file
func ConfigDir() (string, error) {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, "spriteit"), nil
}

// LoadUserConfig reads the user config, returning defaults when no config
// file exists yet.
func LoadUserConfig() (*UserConfig, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("remembered_repo", "")
	v.SetDefault("default_remote", "origin")
	v.SetDefault("history_limit", 50)
	v.SetDefault("open_command", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &UserConfig{v: v}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config file, creating the directory on first use
func (c *UserConfig) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	c.v.Set("remembered_repo", c.RememberedRepo)
	c.v.Set("default_remote", c.DefaultRemote)
	c.v.Set("history_limit", c.HistoryLimit)
	c.v.Set("open_command", c.OpenCommand)

	if err := c.v.WriteConfigAs(filepath.Join(dir, "config.yaml")); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Set updates a single key by its config name and persists the change
func (c *UserConfig) Set(key, value string) error {
	switch key {
	case "remembered_repo":
		c.RememberedRepo = value
	case "default_remote":
		c.DefaultRemote = value
	case "history_limit":
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			return fmt.Errorf("history_limit must be a non-negative integer, got %q", value)
		}
		c.HistoryLimit = limit
	case "open_command":
		c.OpenCommand = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return c.Save()
}

// Get returns a single key's value by its config name
func (c *UserConfig) Get(key string) (string, error) {
	switch key {
	case "remembered_repo":
		return c.RememberedRepo, nil
	case "default_remote":
		return c.DefaultRemote, nil
	case "history_limit":
		return fmt.Sprintf("%d", c.HistoryLimit), nil
	case "open_command":
		return c.OpenCommand, nil
	}
	return "", fmt.Errorf("unknown config key %q", key)
}

// Keys lists the recognized config keys in display order
func Keys() []string {
	return []string{"remembered_repo", "default_remote", "history_limit", "open_command"}
}
