// Package http provides an HTTP-based implementation of linkaudit.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/fwojciec/linkaudit"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies linkaudit in outbound requests.
const DefaultUserAgent = "linkaudit/1.0"

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

// Ensure Fetcher implements linkaudit.Fetcher at compile time.
var _ linkaudit.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using a single HTTP GET.
// It does not execute JavaScript and never retries.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize limits the number of body bytes read. Larger bodies are
// truncated, not rejected.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithClient replaces the underlying HTTP client. The client's Timeout is
// overwritten by the configured timeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	f.client.Timeout = f.timeout

	return f
}

// Fetch retrieves the HTML content from the given URL, decoded to UTF-8
// according to the response's declared charset.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", linkaudit.Errorf(linkaudit.EFETCH, "invalid request for %s: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", f.transportError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", linkaudit.Errorf(linkaudit.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	var body io.Reader = resp.Body
	if f.maxBodySize > 0 {
		body = io.LimitReader(body, f.maxBodySize)
	}

	// Undeclared or unknown charsets fall back to the raw bytes.
	if decoded, err := charset.NewReader(body, resp.Header.Get("Content-Type")); err == nil {
		body = decoded
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", f.transportError(url, err)
	}

	return string(b), nil
}

// transportError converts a client error into an EFETCH error, calling
// out timeouts explicitly.
func (f *Fetcher) transportError(url string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return linkaudit.Errorf(linkaudit.EFETCH, "timed out fetching %s after %s", url, f.timeout)
	}
	if errors.Is(err, context.Canceled) {
		return linkaudit.Errorf(linkaudit.EFETCH, "fetch of %s canceled", url)
	}
	return linkaudit.Errorf(linkaudit.EFETCH, "error accessing %s: %v", url, unwrapURLError(err))
}

// unwrapURLError strips the "Get \"url\": " prefix that net/http adds so the
// message does not repeat the URL.
func unwrapURLError(err error) error {
	var urlErr *neturl.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
