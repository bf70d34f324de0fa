package command

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/payrail/payrail-cli/internal/cli/config"
	"github.com/payrail/payrail-cli/pkg/token"
)

// freshToken is a second well-formed credential for login tests.
const freshToken = "prtk_ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopq"

func testIdentity() map[string]any {
	return map[string]any{
		"id":           "usr_1",
		"name":         "Ada Lovelace",
		"email":        "ada@example.com",
		"organization": "Analytical Engines",
		"mode":         "live",
	}
}

func TestAuthCommand_Structure(t *testing.T) {
	cmd := AuthCommand()

	if cmd.Name != "auth" {
		t.Errorf("Name = %s, want auth", cmd.Name)
	}
	for _, name := range []string{"login", "status", "logout"} {
		subcommand(t, cmd, name)
	}
	if !flagNames(subcommand(t, cmd, "login"))["token"] {
		t.Error("login missing flag: token")
	}
}

func TestAuthLogin_SavesToken(t *testing.T) {
	server := newMockServer()
	defer server.Close()

	var gotAuth string
	server.handle("/v1/me", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		jsonResponse(w, http.StatusOK, testIdentity())
	})

	configPath := filepath.Join(t.TempDir(), "payrail", "config.yaml")
	out, err := runAppWithConfig(t, server, configPath, "auth", "login", "--token", freshToken)
	if err != nil {
		t.Fatalf("error = %v", err)
	}

	// Verification runs with the candidate credential, not the one the
	// runtime client was built with.
	if gotAuth != "Bearer "+freshToken {
		t.Errorf("Authorization = %q, want candidate token", gotAuth)
	}

	if !strings.Contains(out, "Logged in as Ada Lovelace <ada@example.com>.") {
		t.Errorf("output missing identity:\n%s", out)
	}
	if !strings.Contains(out, "Token saved to "+configPath) {
		t.Errorf("output missing save path:\n%s", out)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("stat config: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config mode = %o, want 600", info.Mode().Perm())
	}
	dirInfo, err := os.Stat(filepath.Dir(configPath))
	if err != nil {
		t.Fatalf("stat config dir: %v", err)
	}
	if dirInfo.Mode().Perm() != 0o700 {
		t.Errorf("config dir mode = %o, want 700", dirInfo.Mode().Perm())
	}

	saved, err := config.LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if saved.Token != freshToken {
		t.Errorf("saved token = %q, want %q", saved.Token, freshToken)
	}
	// Flag-sourced values stay out of the file.
	if saved.BaseURL != "" {
		t.Errorf("saved base_url = %q, want empty", saved.BaseURL)
	}
}

func TestAuthLogin_PipedToken(t *testing.T) {
	server := newMockServer()
	defer server.Close()

	server.handle("/v1/me", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, testIdentity())
	})

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	out, _, err := execApp(t, server, configPath, strings.NewReader(freshToken+"\n"), "auth", "login")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(out, "Logged in as") {
		t.Errorf("output = %q, want login confirmation", out)
	}

	saved, err := config.LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if saved.Token != freshToken {
		t.Errorf("saved token = %q, want %q", saved.Token, freshToken)
	}
}

func TestAuthLogin_InvalidFormat(t *testing.T) {
	server := newMockServer()
	defer server.Close()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	_, err := runAppWithConfig(t, server, configPath, "auth", "login", "--token", "nonsense")
	if err == nil || !strings.Contains(err.Error(), "invalid token") {
		t.Fatalf("error = %v, want format error", err)
	}
	if server.hits.Load() != 0 {
		t.Errorf("malformed token reached the network: %d requests", server.hits.Load())
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Error("config file written despite rejected token")
	}
}

func TestAuthLogin_VerificationFails(t *testing.T) {
	server := newMockServer()
	defer server.Close()

	server.handle("/v1/me", func(w http.ResponseWriter, r *http.Request) {
		errorResponse(w, http.StatusUnauthorized, "invalid_token", "Unknown credential")
	})

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	_, err := runAppWithConfig(t, server, configPath, "auth", "login", "--token", freshToken)
	if err == nil || !strings.Contains(err.Error(), "token verification failed") {
		t.Fatalf("error = %v, want verification error", err)
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Error("config file written despite failed verification")
	}
}

func TestAuthStatus(t *testing.T) {
	server := newMockServer()
	defer server.Close()

	server.handle("/v1/me", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, testIdentity())
	})

	out, err := runApp(t, server, "auth", "status")
	if err != nil {
		t.Fatalf("error = %v", err)
	}

	fingerprint := token.Fingerprint(testToken)[:12]
	for _, want := range []string{"Ada Lovelace", "Analytical Engines", "live", fingerprint} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// The credential itself never appears in output.
	if strings.Contains(out, testToken) {
		t.Errorf("raw token leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "prtk_012...EF8") {
		t.Errorf("output missing masked token:\n%s", out)
	}
}

func TestAuthStatus_JSON(t *testing.T) {
	server := newMockServer()
	defer server.Close()

	server.handle("/v1/me", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, testIdentity())
	})

	out, err := runApp(t, server, "--json", "auth", "status")
	if err != nil {
		t.Fatalf("error = %v", err)
	}

	fingerprint := token.Fingerprint(testToken)[:12]
	if !strings.Contains(out, `"token_fingerprint": "`+fingerprint+`"`) {
		t.Errorf("output missing fingerprint:\n%s", out)
	}
	if strings.Contains(out, testToken) {
		t.Errorf("raw token leaked into output:\n%s", out)
	}
}

func TestAuthLogout(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := config.Save(&config.Config{Token: testToken}, configPath); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	out, err := runAppBare(t, configPath, "auth", "logout")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(out, "Logged out.") {
		t.Errorf("output = %q, want logout confirmation", out)
	}

	saved, err := config.LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if saved.Token != "" {
		t.Errorf("token still stored after logout: %q", saved.Token)
	}
}

func TestAuthLogout_NoStoredToken(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := runAppBare(t, configPath, "auth", "logout")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(out, "No stored token.") {
		t.Errorf("output = %q, want no-token notice", out)
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Error("logout created a config file")
	}
}
