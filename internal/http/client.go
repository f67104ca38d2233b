package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUserAgent identifies the tool to servers on every request.
const DefaultUserAgent = "UbuntuImageFetcher/1.0 (Community-Friendly Image Collector)"

// Options configures the HTTP client.
type Options struct {
	// Timeout for the complete request, including body consumption.
	// Default: 15s
	Timeout time.Duration

	// UserAgent sent with every request.
	// Default: DefaultUserAgent
	UserAgent string

	// MaxIdleConnsPerHost sets the maximum idle connections per host.
	// Default: 16
	MaxIdleConnsPerHost int
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Timeout:             15 * time.Second,
		UserAgent:           DefaultUserAgent,
		MaxIdleConnsPerHost: 16,
	}
}

// Response is a streamed HTTP response. The body is not buffered; callers
// own it and must close it on every path.
type Response struct {
	StatusCode    int
	Header        http.Header
	ContentLength int64
	Body          io.ReadCloser
}

// Client performs streamed GET requests. It deliberately carries no retry
// logic; callers decide how a failed request is reported.
type Client struct {
	client *http.Client
	opts   Options
}

// NewClient creates a new HTTP client with the given options. Zero option
// fields are filled with defaults.
func NewClient(opts Options) *Client {
	def := DefaultOptions()
	if opts.Timeout == 0 {
		opts.Timeout = def.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = def.MaxIdleConnsPerHost
	}

	transport := &http.Transport{
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		MaxIdleConns:        opts.MaxIdleConnsPerHost * 2,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		client: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		opts: opts,
	}
}

// Get issues a GET request and returns the response with a streamed body.
// Non-2xx statuses are not errors here: the caller validates the descriptor
// and decides. An error is returned only for transport-level failures
// (connection refused, DNS, TLS, timeout).
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode:    resp.StatusCode,
		Header:        resp.Header,
		ContentLength: resp.ContentLength,
		Body:          resp.Body,
	}, nil
}
