// Package gateway provides the HTTP client for the Payrail platform API.
package gateway

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewRequestID returns a ULID identifying one CLI invocation.
//
// The ID is sent as X-Request-Id on every call of the invocation so
// platform-side logs can be correlated with a single command run.
func NewRequestID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return strings.ToLower(id.String()), nil
}
