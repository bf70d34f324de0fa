// Package token provides Payrail credential validation utilities.
package token

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SecretPrefix is the prefix carried by every Payrail API token.
const SecretPrefix = "prtk_"

// BodyLength is the expected length of the Base64 RawURL encoded token body.
const BodyLength = 43

// base64URLAlphabet covers the characters valid in a token body.
const base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// IsValid reports whether a string has the shape of a Payrail API token.
// It checks format only; whether the platform accepts the token is a
// separate question answered by GET /v1/me.
func IsValid(tok string) bool {
	if !strings.HasPrefix(tok, SecretPrefix) {
		return false
	}

	body := tok[len(SecretPrefix):]
	if len(body) != BodyLength {
		return false
	}

	for _, r := range body {
		if !strings.ContainsRune(base64URLAlphabet, r) {
			return false
		}
	}

	return true
}

// Fingerprint computes the SHA-256 hash of a token.
//
// The returned hash is hex encoded and safe to display: it identifies
// a credential without revealing it.
func Fingerprint(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(h[:])
}
