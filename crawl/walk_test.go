package crawl_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/nyaa"
	"github.com/fwojciec/nyaa/crawl"
	"github.com/fwojciec/nyaa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listing fakes a site: each URL maps to the results its page parses to.
type listing map[string]*nyaa.Results

func (l listing) fetcher(fetched *[]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if fetched != nil {
				*fetched = append(*fetched, url)
			}
			if _, ok := l[url]; !ok {
				return "", nyaa.Errorf(nyaa.ENOTFOUND, "no page %s", url)
			}
			return url, nil
		},
	}
}

func (l listing) parser() *mock.Parser {
	return &mock.Parser{
		ParseFn: func(html string, baseURL string) (*nyaa.Results, error) {
			return l[html], nil
		},
	}
}

func entry(name string) *nyaa.Entry {
	return &nyaa.Entry{Name: name, SourceURL: "https://nyaa.si/view/" + name}
}

func names(entries []*nyaa.Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func pagination(current uint32, numbers ...uint32) *nyaa.Pagination {
	p := &nyaa.Pagination{Current: nyaa.Page{URL: pageURL(current), Number: current}}
	for _, n := range numbers {
		p.Pages = append(p.Pages, nyaa.Page{URL: pageURL(n), Number: n})
	}
	return p
}

func pageURL(n uint32) string {
	return fmt.Sprintf("https://nyaa.si/?p=%d", n)
}

func TestWalker_Walk(t *testing.T) {
	t.Parallel()

	site := listing{
		pageURL(1): {Entries: []*nyaa.Entry{entry("e4"), entry("e5"), entry("e6")}, Pagination: pagination(1, 1, 2, 3)},
		pageURL(2): {Entries: []*nyaa.Entry{entry("e2"), entry("e3"), entry("e4")}, Pagination: pagination(2, 1, 2, 3)},
		pageURL(3): {Entries: []*nyaa.Entry{entry("e1")}, Pagination: pagination(3, 1, 2, 3)},
	}

	t.Run("reads a single page by default", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		w := &crawl.Walker{Fetcher: site.fetcher(&fetched), Parser: site.parser()}

		results, err := w.Walk(context.Background(), pageURL(1))

		require.NoError(t, err)
		assert.Equal(t, []string{pageURL(1)}, fetched)
		assert.Equal(t, []string{"e4", "e5", "e6"}, names(results.Entries))
	})

	t.Run("follows pagination oldest first and drops repeated entries", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		w := &crawl.Walker{Fetcher: site.fetcher(&fetched), Parser: site.parser(), MaxPages: 10}

		results, err := w.Walk(context.Background(), pageURL(1))

		require.NoError(t, err)
		assert.Equal(t, []string{pageURL(1), pageURL(2), pageURL(3)}, fetched)
		assert.Equal(t, []string{"e1", "e2", "e3", "e4", "e5", "e6"}, names(results.Entries))
		assert.Equal(t, uint32(1), results.Pagination.Current.Number)
	})

	t.Run("stops at MaxPages", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		w := &crawl.Walker{Fetcher: site.fetcher(&fetched), Parser: site.parser(), MaxPages: 2}

		results, err := w.Walk(context.Background(), pageURL(1))

		require.NoError(t, err)
		assert.Len(t, fetched, 2)
		assert.Equal(t, []string{"e2", "e3", "e4", "e5", "e6"}, names(results.Entries))
	})

	t.Run("waits on the limiter for every page", func(t *testing.T) {
		t.Parallel()

		var hosts []string
		limiter := &mock.HostLimiter{
			WaitFn: func(_ context.Context, host string) error {
				hosts = append(hosts, host)
				return nil
			},
		}
		w := &crawl.Walker{Fetcher: site.fetcher(nil), Parser: site.parser(), Limiter: limiter, MaxPages: 3}

		_, err := w.Walk(context.Background(), pageURL(1))

		require.NoError(t, err)
		assert.Equal(t, []string{"nyaa.si", "nyaa.si", "nyaa.si"}, hosts)
	})

	t.Run("fails fast on parse errors", func(t *testing.T) {
		t.Parallel()

		parseErr := &nyaa.RowError{Index: 0, Err: errors.New("bad row")}
		parser := &mock.Parser{
			ParseFn: func(html string, baseURL string) (*nyaa.Results, error) {
				if baseURL == pageURL(2) {
					return nil, parseErr
				}
				return site[html], nil
			},
		}
		w := &crawl.Walker{Fetcher: site.fetcher(nil), Parser: parser, MaxPages: 3}

		results, err := w.Walk(context.Background(), pageURL(1))

		assert.Nil(t, results)
		assert.ErrorIs(t, err, parseErr)
		assert.Contains(t, err.Error(), pageURL(2))
	})

	t.Run("returns fetch errors", func(t *testing.T) {
		t.Parallel()

		w := &crawl.Walker{Fetcher: site.fetcher(nil), Parser: site.parser()}

		_, err := w.Walk(context.Background(), "https://nyaa.si/missing")

		assert.Equal(t, nyaa.ENOTFOUND, nyaa.ErrorCode(err))
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := &crawl.Walker{Fetcher: site.fetcher(nil), Parser: site.parser()}

		_, err := w.Walk(ctx, pageURL(1))

		assert.ErrorIs(t, err, context.Canceled)
	})
}
