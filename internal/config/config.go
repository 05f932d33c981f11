// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// package config loads and persists the application configuration. Values
// are layered through viper: defaults, then an optional YAML config file,
// then environment variables (FLASHCARDS_ prefix), then CLI flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds all user-tunable settings.
type Config struct {
	// Language is the UI language code ("en", "de").
	Language string `mapstructure:"language" yaml:"language"`
	// Data configures the library storage.
	Data DataConfig `mapstructure:"data" yaml:"data"`
}

// DataConfig configures where the word set library lives on disk.
type DataConfig struct {
	// File is the path of the flat JSON document holding all word sets.
	File string `mapstructure:"file" yaml:"file"`
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "WordFlashcards")
		default: // Linux, macOS, etc.
			configDir = "/etc/word-flashcards"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "word-flashcards")
	}

	return filepath.Join(configDir, "word-flashcards.yaml"), nil
}

// Load resolves the configuration for cmd. defaults seed viper before any
// file, env or flag values are applied; explicitPath pins the config file
// when the user passed --config.
func Load(cmd *cobra.Command, defaults map[string]any, explicitPath *string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("word-flashcards")
	v.SetConfigType("yaml")

	// An explicit --config path has the highest precedence among files.
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; the defaults carry the app.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("flashcards")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// UserFileExists reports whether a config file already exists at the user
// config path.
func UserFileExists() (bool, error) {
	path, err := getConfigPath(false)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// WriteFile persists c as YAML to the user (or system) config path,
// creating the directory if needed.
func WriteFile(c *Config, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	return nil
}
