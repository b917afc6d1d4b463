// Package client talks to the palette API and wraps the local clipboard.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"palette-api/internal/palette"
	"palette-api/internal/themes"
)

// DefaultBaseURL is where a locally started server listens.
const DefaultBaseURL = "http://localhost:3001/api"

// StatusError is a non-2xx API answer.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("client: HTTP error! status: %d", e.Code)
	}
	return fmt.Sprintf("client: HTTP error! status: %d: %s", e.Code, e.Message)
}

// IsRateLimited reports whether err is a 429 from the API.
func IsRateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusTooManyRequests
}

// Client calls the palette API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New returns a Client for baseURL, which includes the /api prefix.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Healthy reports whether GET /health answers 2xx. Any failure means no.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// ThemePalette requests a themed palette. A fallback answer is not an
// error; callers check Result.Fallback.
func (c *Client) ThemePalette(ctx context.Context, theme string) (themes.Result, error) {
	body, err := json.Marshal(map[string]string{"theme": theme})
	if err != nil {
		return themes.Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate-theme-palette", bytes.NewReader(body))
	if err != nil {
		return themes.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return themes.Result{}, fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return themes.Result{}, fmt.Errorf("client: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &apiErr)
		return themes.Result{}, &StatusError{Code: resp.StatusCode, Message: apiErr.Error}
	}

	// colors decode as a slice so a wrong count is seen, not truncated
	var wire struct {
		Success  bool     `json:"success"`
		Colors   []string `json:"colors"`
		Theme    string   `json:"theme"`
		Error    string   `json:"error"`
		Fallback bool     `json:"fallback"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return themes.Result{}, fmt.Errorf("client: decode response: %w", err)
	}
	colors, err := palette.FromSlice(wire.Colors)
	if err != nil {
		return themes.Result{}, fmt.Errorf("client: response has invalid colors: %w", err)
	}
	return themes.Result{
		Success:  wire.Success,
		Colors:   colors,
		Theme:    wire.Theme,
		Error:    wire.Error,
		Fallback: wire.Fallback,
	}, nil
}
