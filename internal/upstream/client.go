package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// TokenSource provides the bearer token attached to every outgoing request.
// The session store satisfies it.
type TokenSource interface {
	Token() string
}

// Client talks to the legacy inventory REST API. A single instance is shared
// by all feature services; the token is read from the TokenSource on every
// request, so a login or logout takes effect immediately.
type Client struct {
	baseURL string
	http    *http.Client
}

// tokenTransport attaches "Authorization: Token <value>" to every request,
// the upstream's DRF token scheme.
type tokenTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.tokens.Token(); token != "" {
		clone := req.Clone(req.Context())
		clone.Header.Set("Authorization", "Token "+token)
		req = clone
	}
	return t.next.RoundTrip(req)
}

// NewClient creates a Client rooted at baseURL, e.g. "http://host:8000/api".
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &tokenTransport{
				tokens: tokens,
				next:   http.DefaultTransport,
			},
		},
	}
}

// Get issues a GET for the given API path ("/reservas/") with optional query
// parameters and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, u, nil)
}

// GetURL issues a GET for a full or relative URL, as handed back verbatim in
// a pagination envelope's next/previous fields.
func (c *Client) GetURL(ctx context.Context, rawURL string) ([]byte, error) {
	resolved, err := c.resolve(rawURL)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, resolved, nil)
}

// PostJSON issues a POST with a JSON payload and decodes the response into out
// (skipped when out is nil).
func (c *Client) PostJSON(ctx context.Context, path string, payload any, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, payload, out)
}

// PutJSON issues a PUT with a JSON payload.
func (c *Client) PutJSON(ctx context.Context, path string, payload any, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, payload, out)
}

// PatchJSON issues a PATCH with a JSON payload.
func (c *Client) PatchJSON(ctx context.Context, path string, payload any, out any) error {
	return c.sendJSON(ctx, http.MethodPatch, path, payload, out)
}

// Delete issues a DELETE for the given API path.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, c.baseURL+path, nil)
	return err
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	respBody, err := c.do(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, fullURL string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response at all: the connectivity class of failure.
		log.Debugf("upstream request %s %s failed: %v", method, fullURL, err)
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}
	return nil, c.statusError(resp.StatusCode, raw)
}

// statusError maps a non-2xx response onto the client's error taxonomy.
func (c *Client) statusError(status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthenticated
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if fields := parseFieldErrors(body); len(fields) > 0 {
			return &ValidationError{Fields: fields}
		}
		return &StatusError{StatusCode: status, Body: string(body)}
	default:
		return &StatusError{StatusCode: status, Body: string(body)}
	}
}

// parseFieldErrors decodes the DRF validation body: a JSON object mapping
// field names to either a list of messages or a single message string.
func parseFieldErrors(body []byte) map[string][]string {
	var loose map[string]json.RawMessage
	if err := json.Unmarshal(body, &loose); err != nil {
		return nil
	}
	fields := make(map[string][]string, len(loose))
	for name, raw := range loose {
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			fields[name] = list
			continue
		}
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			fields[name] = []string{single}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// resolve turns an envelope pagination link into a requestable URL. Absolute
// links are used verbatim; relative ones are resolved against the base URL's
// origin.
func (c *Client) resolve(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("empty pagination URL")
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw, nil
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid pagination URL %q: %w", raw, err)
	}
	return base.ResolveReference(ref).String(), nil
}
