// Package token provides Payrail credential validation utilities.
//
// This package implements client-side checks for Payrail API tokens.
// Tokens are issued by the platform; the CLI only validates shape and
// derives fingerprints for display.
//
// Token Format:
//
//   - Prefix: prtk_ (5 characters)
//   - Body: 43 characters of Base64 RawURL encoded random bytes
//   - Total: 48 characters
//
// Security:
//
//   - Tokens are never logged or displayed in full
//   - Fingerprints are SHA-256 hex digests, safe to show and compare
package token
