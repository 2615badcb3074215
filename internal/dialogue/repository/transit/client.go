package transit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultLookupTimeout  = 5 * time.Second
	defaultRoutingTimeout = 10 * time.Second
)

// Client is the HTTP wrapper for the transit backend REST API.
type Client struct {
	baseURL        string
	lookupTimeout  time.Duration
	routingTimeout time.Duration
	httpClient     *http.Client
}

// NewClient creates a new transit backend client. Zero timeouts select the
// defaults (5s for lookups, 10s for routing).
func NewClient(baseURL string, lookupTimeout, routingTimeout time.Duration) *Client {
	if lookupTimeout <= 0 {
		lookupTimeout = defaultLookupTimeout
	}
	if routingTimeout <= 0 {
		routingTimeout = defaultRoutingTimeout
	}
	return &Client{
		baseURL:        baseURL,
		lookupTimeout:  lookupTimeout,
		routingTimeout: routingTimeout,
		httpClient:     &http.Client{},
	}
}

// getJSON performs an authorized GET and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, token, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return c.do(req, out)
}

// postJSON performs an authorized POST with a JSON body and decodes the
// response into out.
func (c *Client) postJSON(ctx context.Context, token, url string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(raw))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call transit backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("transit backend error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode transit backend response: %w", err)
	}
	return nil
}
