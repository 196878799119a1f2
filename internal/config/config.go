// Package config loads trench settings from YAML, the environment and .env
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDB        = "TRENCH_DB"
	EnvThemeFile = "TRENCH_THEME_FILE"
)

// DefaultDBFile is the database file name used by every version of the tool
const DefaultDBFile = "excavation_crm.db"

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	Forms       FormsConfig    `yaml:"forms"`
	Currency    string         `yaml:"currency"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// DatabaseConfig controls where and how the store is opened
type DatabaseConfig struct {
	Path string `yaml:"path"`
	// ForeignKeys turns on SQLite foreign key enforcement
	ForeignKeys bool `yaml:"foreign_keys"`
}

// FormsConfig controls the form shell
type FormsConfig struct {
	// Accessible replaces interactive widgets with plain prompts
	Accessible bool `yaml:"accessible"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: DefaultDBPath(),
		},
		Currency:    "$",
		ColorScheme: DefaultColorScheme(),
	}
}

// DefaultDBPath returns ~/.trench/excavation_crm.db, or the bare file name
// in the working directory when the home directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDBFile
	}
	return filepath.Join(home, ".trench", DefaultDBFile)
}

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// loadThemeFile loads and merges theme from TRENCH_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		_ = config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
	}

	// Load theme from TRENCH_THEME_FILE if set
	loadThemeFile(&config)

	if path := os.Getenv(EnvDB); path != "" {
		config.Database.Path = path
	}

	// Fill in any missing values with defaults
	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the config file location, whether or not it exists
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "trench", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "trench", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() error {
	if err := c.ColorScheme.ApplyDefaults(); err != nil {
		return fmt.Errorf("failed to apply theme defaults: %w", err)
	}
	if err := mergo.Merge(c, Default()); err != nil {
		return fmt.Errorf("failed to apply config defaults: %w", err)
	}
	return nil
}
