// Package command provides CLI command definitions for Payrail.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: application assembly, global flags, runtime construction
//   - flags.go: shared typed flags and query helpers
//   - accounts.go: accounts subcommand group
//   - transactions.go: transactions subcommand group
//   - transfers.go: transfers subcommand group
//   - recipients.go: recipients subcommand group
//   - webhooks.go: webhooks subcommand group
//   - auth.go: credential management (login, status, logout)
//   - config.go: local configuration subcommand group
//   - version.go: build information
//
// Commands follow a consistent pattern: parse flags into typed options,
// call the gateway, normalize the response into a table or sheet, and
// hand it to the invocation's formatter.
package command
