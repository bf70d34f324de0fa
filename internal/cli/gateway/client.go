// Package gateway provides the HTTP client for the Payrail platform API.
package gateway

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/payrail/payrail-cli/internal/infra/buildinfo"
	"github.com/payrail/payrail-cli/internal/telemetry/logger"
)

// DefaultTimeout bounds a single request round trip.
const DefaultTimeout = 30 * time.Second

// Client executes authenticated requests against the platform API.
// It is safe for concurrent use.
type Client struct {
	baseURL   string
	token     string
	client    *http.Client
	requestID string
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTLSConfig installs TLS settings, typically a custom trust pool
// for self-hosted platform deployments.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *Client) {
		if cfg == nil {
			return
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = cfg
		c.client.Transport = transport
	}
}

// WithRequestID sets the X-Request-Id header attached to every request.
func WithRequestID(id string) Option {
	return func(c *Client) {
		c.requestID = id
	}
}

// New creates a client for the given platform base URL and credential.
//
// The token may be empty; execution then fails with ErrNotAuthenticated
// at call time, so purely local commands still work.
func New(baseURL, token string, opts ...Option) *Client {
	// Default scheme is https; the platform never serves plain HTTP.
	u := strings.TrimRight(baseURL, "/")
	if u != "" && !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}

	c := &Client{
		baseURL:   u,
		token:     token,
		userAgent: buildinfo.UserAgent(),
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the normalized base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Authenticated reports whether the client carries a credential.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// Execute sends one request and returns the raw JSON body of a
// successful response. It returns nil for 204 or empty bodies,
// *APIError for platform failures, and *DecodeError when a 2xx body
// is not valid JSON. Exactly one attempt is made per call.
func (c *Client) Execute(ctx context.Context, req Request) (json.RawMessage, error) {
	if c.token == "" {
		return nil, ErrNotAuthenticated
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target := req.Path
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.baseURL + target
	}
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.addHeaders(httpReq, req)

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, req.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	logger.L(ctx).Debug("api call",
		"method", method,
		"path", req.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	if !json.Valid(body) {
		return nil, &DecodeError{Err: fmt.Errorf("response is not valid JSON")}
	}

	return json.RawMessage(body), nil
}

// addHeaders attaches authentication and common headers. Caller-supplied
// headers land last so they override the defaults.
func (c *Client) addHeaders(httpReq *http.Request, req Request) {
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if c.requestID != "" {
		httpReq.Header.Set("X-Request-Id", c.requestID)
	}
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
}

// Do executes a request and unmarshals the successful response into T.
func Do[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var out T

	raw, err := c.Execute(ctx, req)
	if err != nil {
		return out, err
	}
	if raw == nil {
		return out, nil
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &DecodeError{Err: err}
	}

	return out, nil
}
