package ckan

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/melaodoidao/datagov-mcp-server/pkg/logging"

	"github.com/google/uuid"
)

// DefaultBaseURL is the API root of the public data.gov catalog.
const DefaultBaseURL = "https://catalog.data.gov/api/3"

// Client issues GET requests against a CKAN API root. It is immutable
// after construction and safe for concurrent use.
//
// The client deliberately stays out of the way: no retries, no timeout
// of its own, no interpretation of response bodies. Callers receive the
// raw bytes and decide what they mean.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for the CKAN API rooted at baseURL. An
// empty baseURL falls back to DefaultBaseURL. Requests use the
// transport defaults of net/http unless WithHTTPClient overrides them.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Action performs GET {base}/action/{action} with the given query
// parameters and returns the raw response body untouched.
//
// Every failure is reported as *APIError: transport errors carry no
// status code, error statuses carry the code plus whatever detail the
// response body yields.
func (c *Client) Action(ctx context.Context, action string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + "/action/" + action
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	requestID := uuid.New().String()
	logging.Debug("CKAN", "[%s] GET %s", requestID, requestURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &APIError{Operation: action, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Debug("CKAN", "[%s] request failed: %v", requestID, err)
		return nil, &APIError{Operation: action, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Debug("CKAN", "[%s] reading response failed: %v", requestID, err)
		return nil, &APIError{Operation: action, StatusCode: resp.StatusCode, Err: err}
	}

	logging.Debug("CKAN", "[%s] %d (%d bytes)", requestID, resp.StatusCode, len(body))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Operation: action, StatusCode: resp.StatusCode, Detail: errorDetail(body)}
	}
	return body, nil
}

// Fetch performs a GET against an arbitrary absolute URL, typically a
// resource download link from a catalog entry, and returns the body
// together with the response's Content-Type header. The content type is
// empty when the server did not send one.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	requestID := uuid.New().String()
	logging.Debug("CKAN", "[%s] GET %s", requestID, rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", &APIError{Operation: rawURL, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Debug("CKAN", "[%s] request failed: %v", requestID, err)
		return nil, "", &APIError{Operation: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Debug("CKAN", "[%s] reading response failed: %v", requestID, err)
		return nil, "", &APIError{Operation: rawURL, StatusCode: resp.StatusCode, Err: err}
	}

	contentType := resp.Header.Get("Content-Type")
	logging.Debug("CKAN", "[%s] %d %s (%d bytes)", requestID, resp.StatusCode, contentType, len(body))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &APIError{Operation: rawURL, StatusCode: resp.StatusCode, Detail: errorDetail(body)}
	}
	return body, contentType, nil
}
