// Package tlsroots provides TLS certificate management for the Payrail CLI.
//
// This package handles trust anchors for gateway connections:
//
//   - roots.go: System certificates + custom CA loading
//
// Features:
//
//   - System certificate pool integration
//   - Custom CA certificate support (ca_cert config key) for
//     self-hosted or proxied platform deployments
package tlsroots
