package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/nfrund/voxnote/internal/domain"
)

// maxResponseBytes bounds how much of the backend response is read.
const maxResponseBytes = 1 << 20

// Client relays authorization codes to the backend verification endpoint.
type Client struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each exchange. Zero disables the client-side deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a Client posting to endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		timeout:    10 * time.Second,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type exchangeResponse struct {
	UserLoggedIn *bool `json:"userLoggedIn"`
}

// Exchange posts {"code": code} and returns the backend's userLoggedIn value.
// Every failure wraps domain.ErrExchangeFailed.
func (c *Client) Exchange(ctx context.Context, code string) (bool, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(domain.AuthorizationExchange{Code: code})
	if err != nil {
		return false, fmt.Errorf("%w: failed to marshal exchange payload: %v", domain.ErrExchangeFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return false, fmt.Errorf("%w: failed to create exchange request: %v", domain.ErrExchangeFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: failed to send request to backend: %v", domain.ErrExchangeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return false, fmt.Errorf("%w: backend returned status %d", domain.ErrExchangeFailed, resp.StatusCode)
	}

	var out exchangeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return false, fmt.Errorf("%w: failed to decode backend response: %v", domain.ErrExchangeFailed, err)
	}
	if out.UserLoggedIn == nil {
		return false, fmt.Errorf("%w: backend response has no userLoggedIn field", domain.ErrExchangeFailed)
	}

	slog.Debug("Backend answered code exchange", "status", resp.StatusCode, "user_logged_in", *out.UserLoggedIn)
	return *out.UserLoggedIn, nil
}
