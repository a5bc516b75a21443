// Package github is the HTTP data-access layer for the GitHub REST and
// GraphQL APIs. Every fetch consults the rate-limit guard before going out.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL    = "https://api.github.com"
	defaultGraphQLURL = "https://api.github.com/graphql"
	defaultUserAgent  = "ghstats/0.1"

	restTimeout    = 10 * time.Second
	graphqlTimeout = 30 * time.Second

	// lowWaterMark is the remaining-call threshold below which the guard
	// logs a warning without failing.
	lowWaterMark = 50
)

type Client struct {
	rest       *http.Client
	graphql    *http.Client
	baseURL    string
	graphqlURL string
	token      string
	log        *zap.SugaredLogger

	retryAttempts uint
	retryDelay    time.Duration
}

func New(token string, log *zap.SugaredLogger) *Client {
	return &Client{
		rest:          &http.Client{Timeout: restTimeout},
		graphql:       &http.Client{Timeout: graphqlTimeout},
		baseURL:       defaultBaseURL,
		graphqlURL:    defaultGraphQLURL,
		token:         token,
		log:           log,
		retryAttempts: 3,
		retryDelay:    5 * time.Second,
	}
}

// TransportError is a network failure or non-2xx status on a single HTTP
// exchange.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("github: request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("github: unexpected status %d from %s", e.StatusCode, e.URL)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (c *Client) applyHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", defaultUserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// getJSON performs one authenticated GET and decodes the body into v. It
// does not consult the rate-limit guard; the guard itself depends on it.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("github: new request: %w", err)
	}
	c.applyHeaders(req)

	resp, err := c.rest.Do(req)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("github: decode response from %s: %w", url, err)
	}
	return nil
}

// FetchJSON is the guarded REST GET: it validates the remaining quota and
// then decodes the response into v. No retry happens at this layer.
func (c *Client) FetchJSON(ctx context.Context, url string, v any) error {
	if err := c.ValidateRateLimit(ctx); err != nil {
		return err
	}
	return c.getJSON(ctx, url, v)
}
