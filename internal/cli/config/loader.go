// Package config defines the CLI configuration structure.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/payrail/payrail-cli/internal/infra/confloader"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. PAYRAIL_TOKEN, PAYRAIL_BASE_URL.
const EnvPrefix = confloader.DefaultEnvPrefix

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".payrail", "config.yaml")
}

// Load resolves the effective configuration for one invocation.
// Priority, lowest to highest: built-in defaults, config file,
// PAYRAIL_* environment variables, explicit flag overrides.
// A missing config file is not an error.
func Load(path string, overrides map[string]any) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	opts := []confloader.Option{confloader.WithEnvPrefix(EnvPrefix)}
	if _, err := os.Stat(path); err == nil {
		opts = append(opts, confloader.WithConfigFile(path))
	}

	loader := confloader.NewLoader(opts...)
	cfg := Default()
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// LoadFile reads only the config file, ignoring defaults, environment,
// and flags. Persisting commands (auth login, config set) run their
// read-modify-write cycle against this view so resolved values from
// other sources never reach disk.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := &Config{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	loader := confloader.NewLoader()
	if err := loader.LoadFile(path); err != nil {
		return nil, err
	}
	if err := loader.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path. The directory is created owner-only and the
// file is written 0600 since it can hold the API token.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}
