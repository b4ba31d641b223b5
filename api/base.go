package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client handles calls to a Kromer2 node. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new API client for the node at baseURL. Connections are
// reused across calls. A nil logger discards request traces.
func NewClient(baseURL string, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute url", ErrURL, baseURL)
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: DefaultTimeout * time.Second,
		},
		logger: logger,
	}, nil
}

// SetHTTPClient replaces the underlying transport.
func (c *Client) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

// BaseURL returns the node URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// resolve joins endpoint onto the base URL and attaches query.
func (c *Client) resolve(endpoint string, query url.Values) (*url.URL, error) {
	target, err := c.baseURL.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrURL, err)
	}
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}
	return target, nil
}

// send performs one round trip and returns the raw body and status code.
func (c *Client) send(ctx context.Context, method, endpoint string, query url.Values) ([]byte, int, error) {
	target, err := c.resolve(endpoint, query)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: create request: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("kromer request",
		"method", req.Method,
		"url", req.URL.String(),
		"headers", req.Header,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: http request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	return body, resp.StatusCode, nil
}

// extractor is implemented by every response envelope.
type extractor[T any] interface {
	extract() (T, error)
}

// request sends a call and decodes the body into the envelope E, whatever the
// status code, so that server-reported errors on 4xx/5xx still surface as
// *KristError.
func request[T any, E any, PE interface {
	*E
	extractor[T]
}](ctx context.Context, c *Client, method, endpoint string, query url.Values) (T, error) {
	var zero T

	body, _, err := c.send(ctx, method, endpoint, query)
	if err != nil {
		return zero, err
	}

	var env E
	if err := json.Unmarshal(body, PE(&env)); err != nil {
		return zero, fmt.Errorf("%w: decode response: %w", ErrTransport, err)
	}

	return PE(&env).extract()
}

func get[T any, E any, PE interface {
	*E
	extractor[T]
}](ctx context.Context, c *Client, endpoint string, query url.Values) (T, error) {
	return request[T, E, PE](ctx, c, http.MethodGet, endpoint, query)
}
