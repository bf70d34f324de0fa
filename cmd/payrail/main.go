// Package main provides the entry point for payrail.
//
// payrail is the command-line client for the Payrail platform,
// translating user commands into authenticated HTTP calls and
// rendering the results as tables or JSON.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/payrail/payrail-cli/internal/cli/command"
	"github.com/payrail/payrail-cli/internal/infra/shutdown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "payrail: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	app, err := command.App()
	if err != nil {
		return err
	}
	return app.RunContext(ctx, os.Args)
}
