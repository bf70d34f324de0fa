// Package command provides CLI command definitions for Payrail.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/payrail/payrail-cli/internal/cli/config"
	"github.com/payrail/payrail-cli/internal/cli/output"
	"github.com/payrail/payrail-cli/internal/telemetry/logger"
)

// ConfigCommand returns the config subcommand group. Mutations operate
// on the file view only; resolved environment and flag values are
// displayed by show but never written back.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:   "config",
		Usage:  "Manage local configuration",
		Action: groupAction("config", configShow),
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the resolved configuration",
				Action: configShow,
			},
			{
				Name:      "set",
				Usage:     "Persist a configuration key",
				ArgsUsage: "KEY VALUE",
				Action:    configSet,
			},
			{
				Name:      "unset",
				Usage:     "Remove a configuration key",
				ArgsUsage: "KEY",
				Action:    configUnset,
			},
			{
				Name:   "path",
				Usage:  "Print the config file location",
				Action: configPath,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt := runtime(c)
	cfg := rt.Config

	tokenDisplay := "(not set)"
	if cfg.Token != "" {
		tokenDisplay = logger.RedactString(cfg.Token)
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, struct {
			BaseURL string `json:"base_url"`
			Token   string `json:"token"`
			Timeout string `json:"timeout"`
			CACert  string `json:"ca_cert"`
			File    string `json:"file"`
		}{cfg.BaseURL, tokenDisplay, cfg.Timeout, cfg.CACert, effectiveConfigPath(rt)})
	}

	sheet := &output.Sheet{}
	sheet.AddField("Base URL", cfg.BaseURL)
	sheet.AddField("Token", tokenDisplay)
	sheet.AddField("Timeout", cfg.Timeout)
	sheet.AddField("CA Cert", cfg.CACert)
	sheet.AddField("File", effectiveConfigPath(rt))
	return rt.Formatter.Format(rt.Stdout, sheet)
}

func configSet(c *cli.Context) error {
	rt := runtime(c)

	key, err := requireArg(c, 0, "key")
	if err != nil {
		return err
	}
	value, err := requireArg(c, 1, "value")
	if err != nil {
		return err
	}

	path := effectiveConfigPath(rt)
	fileCfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if err := fileCfg.Set(key, value); err != nil {
		return err
	}
	if err := config.Save(fileCfg, path); err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, struct {
			Key   string `json:"key"`
			Value string `json:"value"`
		}{key, value})
	}
	fmt.Fprintf(rt.Stdout, "Updated %s.\n", key)
	return nil
}

func configUnset(c *cli.Context) error {
	rt := runtime(c)

	key, err := requireArg(c, 0, "key")
	if err != nil {
		return err
	}

	path := effectiveConfigPath(rt)
	fileCfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if err := fileCfg.Unset(key); err != nil {
		return err
	}
	if err := config.Save(fileCfg, path); err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, struct {
			Key   string `json:"key"`
			Unset bool   `json:"unset"`
		}{key, true})
	}
	fmt.Fprintf(rt.Stdout, "Removed %s.\n", key)
	return nil
}

func configPath(c *cli.Context) error {
	rt := runtime(c)

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, struct {
			Path string `json:"path"`
		}{effectiveConfigPath(rt)})
	}
	fmt.Fprintln(rt.Stdout, effectiveConfigPath(rt))
	return nil
}

func effectiveConfigPath(rt *Runtime) string {
	if rt.ConfigPath != "" {
		return rt.ConfigPath
	}
	return config.DefaultConfigPath()
}
