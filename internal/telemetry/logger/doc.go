// Package logger provides structured logging for the Payrail CLI.
//
// This package wraps log/slog for structured diagnostics on stderr:
//
//   - logger.go: Logger configuration and initialization
//   - context.go: Context-aware logging with request IDs
//   - redact.go: Sensitive data redaction
//
// Features:
//
//   - Text and JSON output formats
//   - Log level filtering
//   - Automatic masking of Payrail credentials
//   - Context propagation so gateway calls log under the invocation's request ID
package logger
