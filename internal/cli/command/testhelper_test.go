package command

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/urfave/cli/v2"
)

// testToken has a valid prtk_ shape (43-character base64url body).
const testToken = "prtk_0123456789abcdefghijklmnopqrstuvwxyzABCDEF8"

// mockServer is a test HTTP server with path-prefix handlers and a
// request counter, so tests can assert that usage errors never reach
// the network.
type mockServer struct {
	*httptest.Server
	handlers map[string]http.HandlerFunc
	hits     atomic.Int64
}

func newMockServer() *mockServer {
	m := &mockServer{handlers: make(map[string]http.HandlerFunc)}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.hits.Add(1)
		for pattern, handler := range m.handlers {
			if strings.HasPrefix(r.URL.Path, pattern) {
				handler(w, r)
				return
			}
		}
		http.NotFound(w, r)
	}))
	return m
}

// handle registers a handler for a path prefix.
func (m *mockServer) handle(pattern string, handler http.HandlerFunc) {
	m.handlers[pattern] = handler
}

// jsonResponse writes a JSON response.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// errorResponse writes the platform's nested error envelope.
func errorResponse(w http.ResponseWriter, status int, code, message string) {
	jsonResponse(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// runAppWithConfig executes the full CLI with the given config file
// path and returns captured stdout.
func runAppWithConfig(t *testing.T, server *mockServer, configPath string, args ...string) (string, error) {
	t.Helper()
	out, _, err := execApp(t, server, configPath, nil, args...)
	return out, err
}

// runAppStdin executes the CLI with the given input wired to
// confirmation prompts.
func runAppStdin(t *testing.T, server *mockServer, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	out, _, err := execApp(t, server, filepath.Join(t.TempDir(), "config.yaml"), stdin, args...)
	return out, err
}

// runAppStderr executes the full CLI and returns captured stderr, for
// tests asserting usage pointers on routing errors.
func runAppStderr(t *testing.T, server *mockServer, args ...string) (string, error) {
	t.Helper()
	_, errOut, err := execApp(t, server, filepath.Join(t.TempDir(), "config.yaml"), nil, args...)
	return errOut, err
}

func execApp(t *testing.T, server *mockServer, configPath string, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	app, err := App()
	if err != nil {
		t.Fatalf("App() error = %v", err)
	}

	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut
	if stdin != nil {
		app.Reader = stdin
	}

	full := []string{"payrail", "--config", configPath}
	if server != nil {
		full = append(full, "--base-url", server.URL, "--token", testToken)
	}
	full = append(full, args...)

	err = app.RunContext(context.Background(), full)
	return out.String(), errOut.String(), err
}

// runApp executes the full CLI against the mock server with an
// isolated throwaway config file.
func runApp(t *testing.T, server *mockServer, args ...string) (string, error) {
	t.Helper()
	return runAppWithConfig(t, server, filepath.Join(t.TempDir(), "config.yaml"), args...)
}

// runAppBare executes the CLI with only the config flag set, for
// commands that should not need a server or credential.
func runAppBare(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	return runAppWithConfig(t, nil, configPath, args...)
}

// flagContext builds a minimal cli.Context for unit tests of flag
// helpers.
func flagContext(t *testing.T, flags []cli.Flag, args ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range flags {
		if err := f.Apply(set); err != nil {
			t.Fatalf("apply flag: %v", err)
		}
	}
	if err := set.Parse(args); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	return cli.NewContext(nil, set, nil)
}

// subcommand finds a direct subcommand by name.
func subcommand(t *testing.T, group *cli.Command, name string) *cli.Command {
	t.Helper()

	for _, sub := range group.Subcommands {
		if sub.Name == name {
			return sub
		}
	}
	t.Fatalf("subcommand %s not found under %s", name, group.Name)
	return nil
}

// flagNames collects the primary names of a command's flags.
func flagNames(cmd *cli.Command) map[string]bool {
	names := make(map[string]bool)
	for _, f := range cmd.Flags {
		names[f.Names()[0]] = true
	}
	return names
}
