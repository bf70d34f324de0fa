package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/payrail/payrail-cli/internal/cli/config"
)

func TestConfigCommand_Structure(t *testing.T) {
	cmd := ConfigCommand()

	if cmd.Name != "config" {
		t.Errorf("Name = %s, want config", cmd.Name)
	}
	for _, name := range []string{"show", "set", "unset", "path"} {
		subcommand(t, cmd, name)
	}
}

func TestConfigSet_Persists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := runAppBare(t, configPath, "config", "set", "base_url", "https://sandbox.payrail.com")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(out, "Updated base_url.") {
		t.Errorf("output = %q, want update confirmation", out)
	}

	saved, err := config.LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if saved.BaseURL != "https://sandbox.payrail.com" {
		t.Errorf("saved base_url = %q", saved.BaseURL)
	}
}

func TestConfigSet_EnvironmentNotWritten(t *testing.T) {
	t.Setenv("PAYRAIL_BASE_URL", "https://env.payrail.com")
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	// Writing one key must not capture resolved environment values
	// into the file.
	if _, err := runAppBare(t, configPath, "config", "set", "timeout", "45s"); err != nil {
		t.Fatalf("error = %v", err)
	}

	saved, err := config.LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if saved.Timeout != "45s" {
		t.Errorf("saved timeout = %q, want 45s", saved.Timeout)
	}
	if saved.BaseURL != "" {
		t.Errorf("environment base_url leaked into the file: %q", saved.BaseURL)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if strings.Contains(string(data), "env.payrail.com") {
		t.Errorf("file contents = %q", data)
	}
}

func TestConfigSet_TokenRefused(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	_, err := runAppBare(t, configPath, "config", "set", "token", testToken)
	if err == nil || !strings.Contains(err.Error(), "auth login") {
		t.Fatalf("error = %v, want token-ownership error", err)
	}
	if _, statErr := os.Stat(configPath); !os.IsNotExist(statErr) {
		t.Error("refused set still wrote the file")
	}
}

func TestConfigSet_InvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"config", "set", "color", "red"}},
		{"bad timeout", []string{"config", "set", "timeout", "banana"}},
		{"negative timeout", []string{"config", "set", "timeout", "-5s"}},
		{"missing value", []string{"config", "set", "timeout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runAppBare(t, configPath, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigUnset(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	seed := &config.Config{BaseURL: "https://sandbox.payrail.com", Timeout: "45s"}
	if err := config.Save(seed, configPath); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	out, err := runAppBare(t, configPath, "config", "unset", "base_url")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(out, "Removed base_url.") {
		t.Errorf("output = %q, want removal confirmation", out)
	}

	saved, err := config.LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if saved.BaseURL != "" {
		t.Errorf("base_url survived unset: %q", saved.BaseURL)
	}
	if saved.Timeout != "45s" {
		t.Errorf("unrelated timeout changed: %q", saved.Timeout)
	}

	// The key disappears from the file entirely rather than remaining
	// as an empty string.
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if strings.Contains(string(data), "base_url") {
		t.Errorf("file contents = %q", data)
	}
}

func TestConfigShow_MasksToken(t *testing.T) {
	t.Setenv("PAYRAIL_TOKEN", "")
	os.Unsetenv("PAYRAIL_TOKEN")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := config.Save(&config.Config{Token: testToken}, configPath); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	out, err := runAppBare(t, configPath, "config", "show")
	if err != nil {
		t.Fatalf("error = %v", err)
	}

	if strings.Contains(out, testToken) {
		t.Errorf("raw token leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "prtk_012...EF8") {
		t.Errorf("output missing masked token:\n%s", out)
	}
	// Defaults surface in the resolved view.
	if !strings.Contains(out, "https://api.payrail.com") {
		t.Errorf("output missing default base URL:\n%s", out)
	}
}

func TestConfigShow_NoToken(t *testing.T) {
	t.Setenv("PAYRAIL_TOKEN", "")
	os.Unsetenv("PAYRAIL_TOKEN")

	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := runAppBare(t, configPath, "config", "show")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(out, "(not set)") {
		t.Errorf("output = %q, want token placeholder", out)
	}
}

func TestConfigBareGroup_DefaultsToShow(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := runAppBare(t, configPath, "config")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(out, "Base URL:") {
		t.Errorf("output = %q, want resolved configuration", out)
	}
}

func TestConfigPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := runAppBare(t, configPath, "config", "path")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if strings.TrimSpace(out) != configPath {
		t.Errorf("output = %q, want %q", out, configPath)
	}
}
