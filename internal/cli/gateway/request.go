// Package gateway provides the HTTP client for the Payrail platform API.
package gateway

import (
	"net/http"
	"net/url"
)

// Request describes one platform API call.
type Request struct {
	// Method defaults to GET when empty.
	Method string
	// Path is resolved against the client base URL unless absolute.
	Path string
	// Query is appended to the URL when non-empty.
	Query url.Values
	// Headers are caller overrides, applied after the defaults.
	Headers map[string]string
	// Body is JSON-encoded when non-nil.
	Body any
	// IdempotencyKey is sent as the Idempotency-Key header.
	IdempotencyKey string
}

// Get builds a GET request.
func Get(path string) Request {
	return Request{Method: http.MethodGet, Path: path}
}

// Post builds a POST request with a fresh idempotency key, so two
// invocations of the same command never collapse into one mutation.
func Post(path string, body any) Request {
	return Request{
		Method:         http.MethodPost,
		Path:           path,
		Body:           body,
		IdempotencyKey: NewIdempotencyKey(),
	}
}

// Patch builds a PATCH request with a fresh idempotency key.
func Patch(path string, body any) Request {
	return Request{
		Method:         http.MethodPatch,
		Path:           path,
		Body:           body,
		IdempotencyKey: NewIdempotencyKey(),
	}
}

// Delete builds a DELETE request. Deletes are naturally idempotent
// and carry no key.
func Delete(path string) Request {
	return Request{Method: http.MethodDelete, Path: path}
}
