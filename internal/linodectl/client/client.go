// Package client provides an HTTP client for the legacy Linode API.
//
// The API serves every action from a single endpoint, selected by the
// api_action parameter, and wraps every response in a batch-capable
// JSON envelope. This package injects the parameters the API needs on
// every request and normalizes the envelope into typed results and
// errors.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// APIHost is the endpoint for the Linode API
	APIHost = "api.linode.com"
	// APIRoot is the path every API action is served from
	APIRoot = "/"
)

// Client provides methods for interacting with the Linode API
type Client struct {
	// baseURL is the root URL for all API requests
	baseURL string
	// apiKey is the authentication key injected into every request
	apiKey string
	// httpClient is the underlying HTTP client
	httpClient *http.Client
	// timeout overrides the HTTP client's timeout when non-zero; held
	// separately so WithTimeout and WithHTTPClient compose in any order
	timeout time.Duration
	// logger receives per-request debug logging
	logger zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for testing
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for request debug logging
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new API client authenticated with the given key
func NewClient(apiKey string, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	c := &Client{
		baseURL: "https://" + APIHost + APIRoot,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range options {
		opt(c)
	}
	if c.timeout > 0 {
		c.httpClient.Timeout = c.timeout
	}

	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return c, nil
}

// AddDefaultParams adds the parameters the API needs on every request.
//
// It sets api_key and api_responseFormat on params, overwriting any
// values already there, and returns the same params. It touches nothing
// else and performs no I/O.
func (c *Client) AddDefaultParams(params url.Values) url.Values {
	params.Set("api_key", c.apiKey)
	// Be explicit about the format in case the server default changes.
	params.Set("api_responseFormat", "json")
	return params
}

// Do invokes one API action with the given parameters and parses the
// response envelope.
//
// On an API-level failure the first reported error is returned along
// with the parsed Response, so callers can still inspect the full error
// collection and the raw body.
func (c *Client) Do(ctx context.Context, action string, params url.Values) (*Response, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_action", action)
	params = c.AddDefaultParams(params)

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	requestID := uuid.New().String()
	start := time.Now()
	c.logger.Debug().
		Str("request_id", requestID).
		Str("action", action).
		Msg("calling API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling %s: %w", action, err)
	}
	defer resp.Body.Close()

	parsed, parseErr := ParseResponse(resp)

	event := c.logger.Debug().
		Str("request_id", requestID).
		Str("action", action).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start))
	if parseErr != nil {
		event = event.Err(parseErr)
	}
	event.Msg("API response")

	return parsed, parseErr
}
