// Package main provides the entry point for payrail.
//
// The CLI gives command-line access to the Payrail platform for:
//
//   - Account and transaction inspection
//   - Transfer creation, listing, and cancellation
//   - Recipient management
//   - Webhook endpoint management
//   - Credential and configuration management
//
// Usage:
//
//	payrail [command] [flags]
//	payrail accounts list --kind checking
//	payrail transfers create --from acc_1 --recipient rcp_2 --amount 125.00 --currency USD
//	payrail auth login
//
// Global flags select the output mode (--json), the platform base URL,
// and the credential; PAYRAIL_* environment variables and the config
// file at ~/.payrail/config.yaml provide the same settings with lower
// precedence.
package main
