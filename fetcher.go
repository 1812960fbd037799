package worldfacts

import "context"

// Fetcher retrieves page HTML from URLs.
// A non-success status or a transport failure is reported as an error;
// callers treat it as "no document".
type Fetcher interface {
	// Fetch returns the HTML of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
