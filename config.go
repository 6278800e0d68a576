package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the user-tunable defaults. Flags always win over config.
type Config struct {
	Editor string `mapstructure:"editor"`
	Remote string `mapstructure:"remote"`
	Mode   string `mapstructure:"mode"`
}

const projectConfigName = ".diff_pick.yaml"

// LoadConfig loads configuration with the following precedence (highest
// first): DIFF_PICK_* environment variables, a project-level .diff_pick.yaml
// found in the current directory or a parent, the user config at
// ~/.config/diff_pick/config.yaml, built-in defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("editor", "")
	v.SetDefault("remote", "")
	v.SetDefault("mode", DefaultDiffMode.String())

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		pv := viper.New()
		pv.SetConfigFile(projectConfig)
		if err := pv.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(pv.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("DIFF_PICK")
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// loadConfigFromPath reads a single config file, for tests.
func loadConfigFromPath(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("mode", DefaultDiffMode.String())
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "diff_pick")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "diff_pick")
}

// findProjectConfig walks from the current directory upward looking for a
// project-level config file.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, projectConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
