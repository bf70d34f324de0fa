// Package gateway provides the HTTP client for the Payrail platform API.
package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAuthenticated is returned when a request is attempted without a credential.
var ErrNotAuthenticated = errors.New("not authenticated: run 'payrail auth login' or set PAYRAIL_TOKEN")

// APIError is a structured error response from the platform.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Code is the platform error code, or "HTTP <status>" when the
	// body carried no parseable envelope.
	Code string
	// Message is the human-readable description.
	Message string
	// Details carries any additional error payload verbatim.
	Details json.RawMessage
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// DecodeError is returned when a successful response body is not valid
// JSON or does not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "gateway: decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// decodeAPIError builds an APIError from a non-2xx response body.
// The platform wraps errors as {"error": {"code", "message", "details"}};
// some endpoints return a flat {"code", "message"}. Anything else
// degrades to a synthetic "HTTP <status>" code.
func decodeAPIError(status int, body []byte) *APIError {
	var envelope struct {
		Error *struct {
			Code    string          `json:"code"`
			Message string          `json:"message"`
			Details json.RawMessage `json:"details"`
		} `json:"error"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != nil && envelope.Error.Code != "" {
			return &APIError{
				Status:  status,
				Code:    envelope.Error.Code,
				Message: envelope.Error.Message,
				Details: envelope.Error.Details,
			}
		}
		if envelope.Code != "" {
			return &APIError{Status: status, Code: envelope.Code, Message: envelope.Message}
		}
	}

	return &APIError{
		Status:  status,
		Code:    fmt.Sprintf("HTTP %d", status),
		Message: http.StatusText(status),
	}
}
