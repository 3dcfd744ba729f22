// Package backend holds the HTTP clients for the four services this
// app sits above: reservations (8080), menu (8081), auth (8082) and
// payments (8083). Every request carries the stored bearer token when
// one exists and fails after a fixed 10 second timeout. Nothing is
// retried; the user repeats the action.
package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

// TokenFunc supplies the current bearer token, or "" when the user is
// not authenticated.
type TokenFunc func() string

// StatusError is returned for any non-2xx response so callers can
// branch on the status code and surface plain-text bodies the
// backends send with 400/409 answers.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend answered %d: %s", e.Code, e.Body)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == code
}

// PlainBody returns the trimmed response body of a StatusError when it
// looks like plain text rather than JSON, else "".
func PlainBody(err error) string {
	var se *StatusError
	if !errors.As(err, &se) {
		return ""
	}
	body := strings.TrimSpace(se.Body)
	if body == "" || strings.HasPrefix(body, "{") || strings.HasPrefix(body, "[") {
		return ""
	}
	return body
}

// Client is the shared HTTP layer under the per-service clients.
type Client struct {
	BaseURL string
	Token   TokenFunc

	httpClient *http.Client
}

// New builds a client for baseURL. token may be nil for services that
// never see authenticated traffic.
func New(baseURL string, token TokenFunc) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) get(path string, out any) error {
	return c.do(http.MethodGet, path, nil, out)
}

func (c *Client) post(path string, in, out any) error {
	return c.do(http.MethodPost, path, in, out)
}

func (c *Client) delete(path string) error {
	return c.do(http.MethodDelete, path, nil, nil)
}

func (c *Client) do(method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request data: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Token != nil {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}
