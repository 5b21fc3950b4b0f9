package linkaudit

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET for the URL and returns the response body.
	// Every failure, including non-2xx statuses and timeouts, is returned
	// as an Error with code EFETCH.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}
