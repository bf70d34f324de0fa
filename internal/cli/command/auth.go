// Package command provides CLI command definitions for Payrail.
package command

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/payrail/payrail-cli/internal/cli/config"
	"github.com/payrail/payrail-cli/internal/cli/gateway"
	"github.com/payrail/payrail-cli/internal/cli/output"
	"github.com/payrail/payrail-cli/internal/telemetry/logger"
	"github.com/payrail/payrail-cli/pkg/token"
)

// Identity describes the authenticated principal as reported by the
// platform.
type Identity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Mode         string `json:"mode"`
}

// AuthCommand returns the auth subcommand group.
func AuthCommand() *cli.Command {
	return &cli.Command{
		Name:   "auth",
		Usage:  "Manage API credentials",
		Action: groupAction("auth", nil),
		Subcommands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Verify a token and store it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "token",
						Usage: "API token; prompted for when omitted",
					},
				},
				Action: authLogin,
			},
			{
				Name:   "status",
				Usage:  "Show the authenticated identity",
				Action: authStatus,
			},
			{
				Name:   "logout",
				Usage:  "Remove the stored token",
				Action: authLogout,
			},
		},
	}
}

func authLogin(c *cli.Context) error {
	rt := runtime(c)

	tok := c.String("token")
	if tok == "" {
		var err error
		tok, err = readToken(rt)
		if err != nil {
			return err
		}
	}

	if !token.IsValid(tok) {
		return fmt.Errorf("invalid token: expected %q followed by %d characters",
			token.SecretPrefix, token.BodyLength)
	}

	// Verify the candidate token against the platform before writing
	// anything. The runtime client carries the old credential, so the
	// check needs its own client.
	verifier := gateway.New(rt.Config.BaseURL, tok, rt.ClientOpts...)
	identity, err := gateway.Do[Identity](c.Context, verifier, gateway.Get("/v1/me"))
	if err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}

	path := rt.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	fileCfg.Token = tok
	if err := config.Save(fileCfg, path); err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, struct {
			Identity Identity `json:"identity"`
			Saved    string   `json:"saved"`
		}{identity, path})
	}

	fmt.Fprintf(rt.Stdout, "Logged in as %s <%s>.\n", identity.Name, identity.Email)
	fmt.Fprintf(rt.Stdout, "Token saved to %s.\n", path)
	return nil
}

func authStatus(c *cli.Context) error {
	rt := runtime(c)

	identity, err := gateway.Do[Identity](c.Context, rt.Client, gateway.Get("/v1/me"))
	if err != nil {
		return err
	}

	fingerprint := token.Fingerprint(rt.Config.Token)[:12]

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, struct {
			Identity    Identity `json:"identity"`
			BaseURL     string   `json:"base_url"`
			Fingerprint string   `json:"token_fingerprint"`
		}{identity, rt.Client.BaseURL(), fingerprint})
	}

	sheet := &output.Sheet{}
	sheet.AddField("Logged in as", identity.Name)
	sheet.AddField("Email", identity.Email)
	sheet.AddField("Organization", identity.Organization)
	sheet.AddField("Mode", identity.Mode)
	sheet.AddField("Base URL", rt.Client.BaseURL())
	sheet.AddField("Token", logger.RedactString(rt.Config.Token))
	sheet.AddField("Fingerprint", fingerprint)
	return rt.Formatter.Format(rt.Stdout, sheet)
}

func authLogout(c *cli.Context) error {
	rt := runtime(c)

	path := rt.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	if fileCfg.Token == "" {
		fmt.Fprintln(rt.Stdout, "No stored token.")
		return nil
	}

	fileCfg.Token = ""
	if err := config.Save(fileCfg, path); err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, struct {
			LoggedOut bool `json:"logged_out"`
		}{true})
	}

	fmt.Fprintln(rt.Stdout, "Logged out.")
	if os.Getenv("PAYRAIL_TOKEN") != "" {
		fmt.Fprintln(rt.Stdout, "PAYRAIL_TOKEN is still set in the environment.")
	}
	return nil
}

// readToken reads a token interactively. Terminal input is read with
// echo disabled; piped input falls back to a plain line read.
func readToken(rt *Runtime) (string, error) {
	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		fmt.Fprint(rt.Stdout, "API token: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(rt.Stdout)
		if err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(rt.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}
