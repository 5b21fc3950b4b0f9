package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/linkaudit"
	lahttp "github.com/fwojciec/linkaudit/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := lahttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("performs exactly one GET with the configured user agent", func(t *testing.T) {
		t.Parallel()

		requests := make(chan *http.Request, 10)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests <- r.Clone(context.Background())
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := lahttp.NewFetcher(lahttp.WithUserAgent("audit-test/2"))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		require.Len(t, requests, 1)
		req := <-requests
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "audit-test/2", req.Header.Get("User-Agent"))
	})

	t.Run("accepts any 2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNonAuthoritativeInfo)
			_, _ = w.Write([]byte("<p>partial mirror</p>"))
		}))
		defer server.Close()

		fetcher := lahttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<p>partial mirror</p>", html)
	})

	t.Run("decodes declared charset to UTF-8", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte("<p>caf\xe9</p>"))
		}))
		defer server.Close()

		fetcher := lahttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<p>café</p>", html)
	})

	t.Run("truncates bodies beyond the size limit", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(strings.Repeat("a", 100)))
		}))
		defer server.Close()

		fetcher := lahttp.NewFetcher(lahttp.WithMaxBodySize(10))
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Len(t, html, 10)
	})

	t.Run("maps timeout to fetch error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := lahttp.NewFetcher(lahttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, linkaudit.EFETCH, linkaudit.ErrorCode(err))
		assert.Contains(t, linkaudit.ErrorMessage(err), "timed out")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := lahttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
		assert.Equal(t, linkaudit.EFETCH, linkaudit.ErrorCode(err))
	})

	t.Run("returns fetch error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := lahttp.NewFetcher(lahttp.WithTimeout(2 * time.Second))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://nonexistent.invalid")
		require.Error(t, err)
		assert.Equal(t, linkaudit.EFETCH, linkaudit.ErrorCode(err))
		assert.Contains(t, linkaudit.ErrorMessage(err), "nonexistent.invalid")
	})

	t.Run("returns fetch error for malformed URL", func(t *testing.T) {
		t.Parallel()

		fetcher := lahttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "://not a url")
		require.Error(t, err)
		assert.Equal(t, linkaudit.EFETCH, linkaudit.ErrorCode(err))
	})

	t.Run("returns fetch error for unsupported scheme", func(t *testing.T) {
		t.Parallel()

		fetcher := lahttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "ftp://example.com/file")
		require.Error(t, err)
		assert.Equal(t, linkaudit.EFETCH, linkaudit.ErrorCode(err))
	})

	t.Run("returns error for non-2xx status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		fetcher := lahttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, linkaudit.EFETCH, linkaudit.ErrorCode(err))
		assert.Contains(t, linkaudit.ErrorMessage(err), "404")
	})

	t.Run("treats server errors as failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		fetcher := lahttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Empty(t, html)
		assert.Contains(t, linkaudit.ErrorMessage(err), "503")
	})
}
