// Package command provides CLI command definitions for Payrail.
package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/payrail/payrail-cli/internal/cli/config"
	"github.com/payrail/payrail-cli/internal/cli/gateway"
	"github.com/payrail/payrail-cli/internal/cli/output"
	"github.com/payrail/payrail-cli/internal/infra/buildinfo"
	"github.com/payrail/payrail-cli/internal/infra/tlsroots"
	"github.com/payrail/payrail-cli/internal/telemetry/logger"
)

var (
	// ErrDuplicateCommand reports a command name or alias registered twice.
	ErrDuplicateCommand = errors.New("duplicate command")

	// ErrUnknownCommand reports a command name that resolves to nothing.
	ErrUnknownCommand = errors.New("unknown command")
)

// Runtime is the execution context of one invocation: resolved
// configuration, gateway client, and output plumbing. It is built once
// by the Before hook and never mutated afterwards.
type Runtime struct {
	Config     *config.Config
	ConfigPath string
	Client     *gateway.Client
	// ClientOpts are the options Client was built with, kept so auth
	// login can build a verification client around a candidate token.
	ClientOpts []gateway.Option
	Formatter  output.Formatter
	JSON       bool
	Stdin      io.Reader
	Stdout     io.Writer
}

// App creates the CLI application with all commands registered.
func App() (*cli.App, error) {
	app := &cli.App{
		Name:     "payrail",
		Usage:    "Payrail platform command-line client",
		Version:  buildinfo.String(),
		Flags:    globalFlags(),
		Before:   setupRuntime,
		Metadata: map[string]any{},
		Action: func(c *cli.Context) error {
			// Reached only when the leading argument matches no
			// registered command.
			if c.Args().Present() {
				fmt.Fprintf(c.App.ErrWriter, "Run '%s --help' for usage.\n", c.App.Name)
				return fmt.Errorf("%w: %s", ErrUnknownCommand, c.Args().First())
			}
			return cli.ShowAppHelp(c)
		},
	}

	err := registerCommands(app,
		AccountsCommand(),
		TransactionsCommand(),
		TransfersCommand(),
		RecipientsCommand(),
		WebhooksCommand(),
		AuthCommand(),
		ConfigCommand(),
		VersionCommand(),
	)
	if err != nil {
		return nil, err
	}

	return app, nil
}

// registerCommands installs commands on the app. Names and aliases must
// be unique across the registry; resolution is exact match only.
func registerCommands(app *cli.App, cmds ...*cli.Command) error {
	seen := make(map[string]bool)
	for _, cmd := range cmds {
		for _, name := range cmd.Names() {
			if seen[name] {
				return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
			}
			seen[name] = true
		}
		app.Commands = append(app.Commands, cmd)
	}
	return nil
}

// globalFlags returns the flags shared by every command.
//
// PAYRAIL_BASE_URL, PAYRAIL_TOKEN, PAYRAIL_TIMEOUT, and PAYRAIL_CA_CERT
// are resolved by the config layer, not bound to flags, so precedence
// stays in one place: defaults < file < environment < flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output JSON instead of tables",
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "Platform API base URL",
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "API token (prtk_...)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Timeout per HTTP request",
		},
		&cli.StringFlag{
			Name:  "ca-cert",
			Usage: "PEM bundle replacing the system trust roots",
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Config file path",
			EnvVars: []string{"PAYRAIL_CONFIG"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
			EnvVars: []string{"PAYRAIL_VERBOSE"},
		},
	}
}

// setupRuntime resolves configuration, builds the gateway client, and
// installs the Runtime for command handlers. It runs before any
// command action.
func setupRuntime(c *cli.Context) error {
	overrides := map[string]any{}
	if c.IsSet("base-url") {
		overrides["base_url"] = c.String("base-url")
	}
	if c.IsSet("token") {
		overrides["token"] = c.String("token")
	}
	if c.IsSet("timeout") {
		overrides["timeout"] = c.Duration("timeout").String()
	}
	if c.IsSet("ca-cert") {
		overrides["ca_cert"] = c.String("ca-cert")
	}

	cfg, err := config.Load(c.String("config"), overrides)
	if err != nil {
		return err
	}

	logCfg := logger.DefaultConfig()
	if c.Bool("verbose") {
		logCfg.Level = "debug"
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}

	requestID, err := gateway.NewRequestID()
	if err != nil {
		return err
	}
	log = log.With("request_id", requestID)

	timeout, err := cfg.TimeoutValue()
	if err != nil {
		return err
	}

	opts := []gateway.Option{
		gateway.WithTimeout(timeout),
		gateway.WithRequestID(requestID),
	}
	if cfg.CACert != "" {
		pool := tlsroots.NewEmptyPool()
		if err := pool.AddCertFile(cfg.CACert); err != nil {
			return err
		}
		opts = append(opts, gateway.WithTLSConfig(pool.TLSConfig()))
	}

	format := output.FormatTable
	if c.Bool("json") {
		format = output.FormatJSON
	}

	c.App.Metadata["runtime"] = &Runtime{
		Config:     cfg,
		ConfigPath: c.String("config"),
		Client:     gateway.New(cfg.BaseURL, cfg.Token, opts...),
		ClientOpts: opts,
		Formatter:  output.NewFormatter(format),
		JSON:       c.Bool("json"),
		Stdin:      c.App.Reader,
		Stdout:     c.App.Writer,
	}

	c.Context = logger.WithRequestID(logger.WithLogger(c.Context, log), requestID)
	return nil
}

// runtime returns the Runtime installed by setupRuntime.
func runtime(c *cli.Context) *Runtime {
	rt, _ := c.App.Metadata["runtime"].(*Runtime)
	return rt
}

// groupAction handles a group invoked without a known subcommand. A
// leftover positional is a routing error; a bare invocation runs
// fallback when the group has a default listing, otherwise shows help.
func groupAction(group string, fallback cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.Args().Present() {
			fmt.Fprintf(c.App.ErrWriter, "Run '%s %s --help' for usage.\n", c.App.Name, group)
			return fmt.Errorf("%w: %s %s", ErrUnknownCommand, group, c.Args().First())
		}
		if fallback != nil {
			return fallback(c)
		}
		return cli.ShowSubcommandHelp(c)
	}
}

// confirm prompts for a y/N answer on the runtime's input.
func confirm(rt *Runtime, prompt string) bool {
	fmt.Fprintf(rt.Stdout, "%s [y/N]: ", prompt)
	var answer string
	fmt.Fscanln(rt.Stdin, &answer)
	return answer == "y" || answer == "Y"
}
