// Package command provides CLI command definitions for Payrail.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/payrail/payrail-cli/internal/cli/output"
	"github.com/payrail/payrail-cli/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show build information",
		Action: versionShow,
	}
}

func versionShow(c *cli.Context) error {
	rt := runtime(c)
	info := buildinfo.Get()

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, info)
	}

	sheet := &output.Sheet{}
	sheet.AddField("Version", info.Version)
	sheet.AddField("Commit", info.Commit)
	sheet.AddField("Built", info.BuildTime)
	sheet.AddField("Go", info.GoVersion)
	return rt.Formatter.Format(rt.Stdout, sheet)
}
