// Package crawl follows listing pagination across several pages.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"github.com/fwojciec/nyaa"
	"github.com/fwojciec/nyaa/bloom"
)

// Bloom filter sizing for cross-page deduplication. A listing page holds
// at most 75 entries.
const (
	entriesPerPage    = 75
	falsePositiveRate = 0.001
)

// Walker fetches a listing and the pages after it.
type Walker struct {
	Fetcher nyaa.Fetcher
	Parser  nyaa.Parser
	// Limiter is optional; nil disables rate limiting.
	Limiter nyaa.HostLimiter
	// MaxPages bounds the number of pages fetched. Values below 1 mean 1.
	MaxPages int
}

// Walk fetches startURL and follows pagination to the next page until
// MaxPages pages were read or no next page is listed. Entries shown on an
// earlier page are dropped when they reappear, which happens when new
// uploads push entries down while walking. The returned entries are oldest
// first across all pages; pagination is that of the first page.
func (w *Walker) Walk(ctx context.Context, startURL string) (*nyaa.Results, error) {
	maxPages := max(w.MaxPages, 1)
	seen := bloom.NewFilter(uint(maxPages*entriesPerPage), falsePositiveRate)

	var (
		pages      [][]*nyaa.Entry
		pagination *nyaa.Pagination
	)

	pageURL := startURL
	for n := range maxPages {
		results, err := w.page(ctx, pageURL)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			pagination = results.Pagination
		}
		pages = append(pages, dedupe(results.Entries, seen))

		if results.Pagination == nil {
			break
		}
		next, ok := results.Pagination.Next()
		if !ok {
			break
		}
		pageURL = next.URL
	}

	// Later pages hold older entries.
	entries := []*nyaa.Entry{}
	for _, page := range slices.Backward(pages) {
		entries = append(entries, page...)
	}

	return &nyaa.Results{
		Entries:    entries,
		Pagination: pagination,
	}, nil
}

func (w *Walker) page(ctx context.Context, pageURL string) (*nyaa.Results, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if w.Limiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, &nyaa.BaseURLError{URL: pageURL, Err: err}
		}
		if err := w.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := w.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	results, err := w.Parser.Parse(html, pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	return results, nil
}

// dedupe drops entries whose key was already seen. Entries are checked
// newest first so that the newest copy of a key is kept.
func dedupe(entries []*nyaa.Entry, seen *bloom.Filter) []*nyaa.Entry {
	kept := make([]*nyaa.Entry, 0, len(entries))
	for _, e := range slices.Backward(entries) {
		if seen.Seen(e.Key()) {
			continue
		}
		kept = append(kept, e)
	}
	slices.Reverse(kept)
	return kept
}
