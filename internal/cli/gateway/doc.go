// Package gateway provides the HTTP client for the Payrail platform API.
//
// This package turns typed requests into authenticated HTTP calls:
//
//   - client.go: Client construction, header policy, Execute/Do
//   - request.go: Request type and method builders
//   - page.go: Cursor pagination envelope decoding
//   - errors.go: APIError / DecodeError taxonomy
//   - idempotency.go: Idempotency-Key generation for mutations
//   - requestid.go: Per-invocation X-Request-Id generation
//
// Every call makes exactly one attempt: the CLI never retries, so a
// failure observed by the user is a failure observed by the platform
// at most once.
package gateway
