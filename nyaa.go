// Package nyaa turns rendered nyaa.si listing pages into typed result sets.
// It parses the results table into entries (title, download links, size,
// seed/leech/download counters, date) plus pagination metadata.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package nyaa

import "context"

// Parser turns a listing page into Results.
type Parser interface {
	// Parse extracts entries and pagination from html. The baseURL must be
	// the URL the html was fetched from; relative links resolve against it.
	// Parsing is all-or-nothing: any row or pagination failure is returned
	// and no partial Results are produced.
	Parse(html string, baseURL string) (*Results, error)
}

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// HostLimiter provides per-host rate limiting.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
