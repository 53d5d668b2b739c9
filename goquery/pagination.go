package goquery

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nyaa"
)

const (
	selectorCurrentPage = "ul.pagination > li.active > a"
	selectorPages       = "ul.pagination > li:not(.disabled):not(.next) > a:not([rel])"
)

// extractPagination returns nil when the document has no active page
// marker. Once the marker is found, every failure is a PaginationError.
func extractPagination(doc *goquery.Selection, base *url.URL) (*nyaa.Pagination, error) {
	marker := doc.Find(selectorCurrentPage).First()
	if marker.Length() == 0 {
		return nil, nil
	}

	current, err := makePage(marker, base)
	if err != nil {
		return nil, &nyaa.PaginationError{Err: err}
	}

	pagination := &nyaa.Pagination{Current: current}
	matches := 0
	for _, link := range all(doc, selectorPages) {
		page, err := makePage(link, base)
		if err != nil {
			return nil, &nyaa.PaginationError{Err: err}
		}
		if pagination.IsCurrent(page) {
			matches++
		}
		pagination.Pages = append(pagination.Pages, page)
	}

	if matches != 1 {
		return nil, &nyaa.PaginationError{
			Err: fmt.Errorf("current page %d listed %d times", current.Number, matches),
		}
	}
	return pagination, nil
}

// makePage reads the page number from the first word of the link text,
// e.g. "2 (current)".
func makePage(link *goquery.Selection, base *url.URL) (nyaa.Page, error) {
	u, err := href(link, base)
	if err != nil {
		return nyaa.Page{}, err
	}

	words := strings.Fields(link.Text())
	if len(words) == 0 {
		return nyaa.Page{}, &nyaa.FieldError{Field: "page", Err: errors.New("empty page element content")}
	}
	n, err := strconv.ParseUint(words[0], 10, 32)
	if err != nil {
		return nyaa.Page{}, &nyaa.FieldError{Field: "page", Raw: words[0], Err: err}
	}
	return nyaa.Page{URL: u, Number: uint32(n)}, nil
}
