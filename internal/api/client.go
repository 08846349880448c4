// Package api is the authenticated request gateway: the single choke point
// through which every call to the marketplace backend is dispatched. It
// attaches the session's bearer token, maps transport and auth failures to
// sentinel errors, and passes business-rule errors through unchanged.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"kickitup/internal/logging"
)

// TokenSource yields the current bearer token, or "" when logged out.
// The session store provides it; the gateway never holds token state itself.
type TokenSource func() string

// Client talks HTTP/JSON to the backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
	tokens  TokenSource

	mu             sync.Mutex
	onUnauthorized func()
	invalidated    string
}

// New builds a gateway for the backend at baseURL. Every request times out
// after timeout.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetTokenSource registers the credential accessor. Requests made while the
// source yields "" go out unauthenticated.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// OnUnauthorized registers the hook fired when the backend rejects the
// current token. The hook runs at most once per distinct token, so a burst
// of 401s during one invalidation triggers a single logout.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *Client) currentToken() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens()
}

func (c *Client) reportUnauthorized(token string) {
	if token == "" {
		// Anonymous request hitting a protected endpoint; nothing to invalidate.
		return
	}
	c.mu.Lock()
	if token == c.invalidated {
		c.mu.Unlock()
		return
	}
	c.invalidated = token
	hook := c.onUnauthorized
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// serverMessage extracts the human-readable error text from a backend error
// payload, trying the "error" field first, then "message".
func serverMessage(data []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

// do performs one request. body (if non-nil) is sent as JSON; out (if
// non-nil) receives the decoded response. There is no retry at this layer.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token := c.currentToken()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "response", "method", method, "path", path, "status", resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.reportUnauthorized(token)
		if msg := serverMessage(data); msg != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
		return ErrUnauthorized

	case resp.StatusCode >= 400:
		return &APIError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
