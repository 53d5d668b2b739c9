// Package goquery implements nyaa.Parser on top of goquery CSS selectors.
package goquery

import (
	"errors"
	"net/url"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nyaa"
	"golang.org/x/sync/errgroup"
)

// Ensure Parser implements nyaa.Parser at compile time.
var _ nyaa.Parser = (*Parser)(nil)

// selectorFirstMagnet finds the magnet icon of the first results row.
// The table sits tableDepth levels above it: i < a < td < tr < tbody < table.
const (
	selectorFirstMagnet = "div.table-responsive > table > tbody > tr > td.text-center > a > i.fa-magnet"
	selectorRows        = "tbody > tr"
	tableDepth          = 5
)

// Parser extracts listing results from nyaa.si pages, including the home
// page with query parameters and user profile pages.
type Parser struct {
	concurrency int
}

// Option configures a Parser.
type Option func(*Parser)

// WithConcurrency sets how many rows are extracted in parallel.
// Values below 2 extract rows sequentially, which is the default.
func WithConcurrency(n int) Option {
	return func(p *Parser) {
		p.concurrency = n
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{concurrency: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts entries and pagination from html fetched from baseURL.
// Entries are returned oldest first.
func (p *Parser) Parse(html string, baseURL string) (*nyaa.Results, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, &nyaa.BaseURLError{URL: baseURL, Err: err}
	}
	if !base.IsAbs() {
		return nil, &nyaa.BaseURLError{URL: baseURL, Err: errRelativeURL}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	table, err := findTable(doc.Selection)
	if err != nil {
		return nil, err
	}

	rows := table.Find(selectorRows)
	entries, err := p.extractRows(rows, base)
	if err != nil {
		return nil, err
	}

	pagination, err := extractPagination(doc.Selection, base)
	if err != nil {
		return nil, err
	}

	// Listings show the newest entry first.
	slices.Reverse(entries)

	return &nyaa.Results{
		Entries:    entries,
		Pagination: pagination,
	}, nil
}

func findTable(doc *goquery.Selection) (*goquery.Selection, error) {
	table := doc.Find(selectorFirstMagnet).First()
	if table.Length() == 0 {
		return nil, nyaa.ErrTableNotFound
	}
	for range tableDepth {
		table = table.Parent()
		if table.Length() == 0 {
			return nil, nyaa.ErrTableNotFound
		}
	}
	return table, nil
}

// extractRows returns one entry per row in document order. When several
// rows fail, the error of the first failing row in document order wins.
func (p *Parser) extractRows(rows *goquery.Selection, base *url.URL) ([]*nyaa.Entry, error) {
	entries := make([]*nyaa.Entry, rows.Length())

	if p.concurrency < 2 {
		for i, row := range rows.EachIter() {
			entry, err := extractRow(row, base)
			if err != nil {
				return nil, &nyaa.RowError{Index: i, Err: err}
			}
			entries[i] = entry
		}
		return entries, nil
	}

	errs := make([]error, rows.Length())
	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, row := range rows.EachIter() {
		g.Go(func() error {
			entries[i], errs[i] = extractRow(row, base)
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, &nyaa.RowError{Index: i, Err: err}
		}
	}
	return entries, nil
}

var errRelativeURL = errors.New("url is not absolute")
