// Package gateway provides the HTTP client for the Payrail platform API.
package gateway

import "github.com/google/uuid"

// NewIdempotencyKey returns a fresh idempotency key.
//
// Keys are UUIDv4. The platform deduplicates mutations sharing a key,
// so a key must never be reused across distinct logical operations;
// callers wanting safe retries pass their own stable key instead.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
