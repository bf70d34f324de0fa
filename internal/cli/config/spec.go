// Package config defines the CLI configuration structure.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the configuration for payrail. All fields are optional in
// the file; resolution falls back to built-in defaults.
type Config struct {
	// BaseURL is the API origin requests are issued against.
	BaseURL string `koanf:"base_url" yaml:"base_url,omitempty"`

	// Token is the API credential. It is written by `auth login` only;
	// `config set` refuses it.
	Token string `koanf:"token" yaml:"token,omitempty"`

	// Timeout bounds each HTTP exchange, as a Go duration string.
	Timeout string `koanf:"timeout" yaml:"timeout,omitempty"`

	// CACert points at a PEM bundle that replaces the system roots.
	CACert string `koanf:"ca_cert" yaml:"ca_cert,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL: "https://api.payrail.com",
		Timeout: "30s",
	}
}

// TimeoutValue parses the configured timeout.
func (c *Config) TimeoutValue() (time.Duration, error) {
	return parseTimeout(c.Timeout)
}

// Set assigns a settable key. The token key is owned by `auth login`
// and rejected here; unknown keys are errors.
func (c *Config) Set(key, value string) error {
	switch key {
	case "base_url":
		c.BaseURL = value
	case "timeout":
		if _, err := parseTimeout(value); err != nil {
			return err
		}
		c.Timeout = value
	case "ca_cert":
		c.CACert = value
	case "token":
		return errors.New("config: token is managed by 'payrail auth login'")
	default:
		return fmt.Errorf("config: unknown key %q", key)
	}
	return nil
}

// Unset clears a settable key so resolution falls back to the built-in
// default. With omitempty tags the key disappears from the saved file.
func (c *Config) Unset(key string) error {
	switch key {
	case "base_url":
		c.BaseURL = ""
	case "timeout":
		c.Timeout = ""
	case "ca_cert":
		c.CACert = ""
	case "token":
		return errors.New("config: token is managed by 'payrail auth logout'")
	default:
		return fmt.Errorf("config: unknown key %q", key)
	}
	return nil
}

func parseTimeout(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config: invalid timeout %q: %w", value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: timeout %q must be positive", value)
	}
	return d, nil
}
