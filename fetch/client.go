package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// QueryParams is implemented by list/detail param types that serialize
// themselves onto the request query string.
type QueryParams interface {
	Values() url.Values
}

// Client issues the admin API requests behind the data layer. One request
// per call: no retries, timeouts or backoff live here — those belong to
// the injected http.Client if a deployment wants them.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	header  http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying http.Client. The default is
// http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithHeader adds a header sent on every request, typically the panel's
// bearer token or publishable key.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.header.Set(key, value)
	}
}

// NewClient creates a client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: parse base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("fetch: base URL %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL: parsed,
		http:    http.DefaultClient,
		header:  make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do issues a single request and decodes the JSON response into out.
//
// A non-2xx response becomes a *Error carrying the status and the server
// message (decoded from a {"message": ...} body when present). When the
// decoded payload implements validation.Validatable it is validated before
// being returned, so a malformed server response fails here with a
// descriptive error instead of leaking zero-valued fields into the UI.
func (c *Client) Do(ctx context.Context, method, path string, query QueryParams, body, out any) error {
	u := c.resolve(path)
	if query != nil {
		if values := query.Values(); len(values) > 0 {
			u.RawQuery = values.Encode()
		}
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("fetch: encode %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("fetch: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range c.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errorFromResponse(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("fetch: decode %s %s response: %w", method, path, err)
	}

	if v, ok := out.(validation.Validatable); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("fetch: invalid %s %s response: %w", method, path, err)
		}
	}

	return nil
}

// resolve joins path onto the base URL, keeping any base path prefix.
func (c *Client) resolve(path string) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	return &u
}

// errorFromResponse converts a non-2xx response into a *Error. The body is
// read fully so the connection can be reused.
func errorFromResponse(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return NewError(resp.StatusCode, payload.Message)
	}
	return NewError(resp.StatusCode, "")
}
