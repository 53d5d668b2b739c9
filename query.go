package nyaa

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Source is a site that serves nyaa-style listings.
type Source string

// Supported sources.
const (
	SourceNyaa    Source = "nyaasi"
	SourceSukebei Source = "sukebei"
)

// BaseURL returns the site root for the source.
func (s Source) BaseURL() (string, bool) {
	switch s {
	case SourceNyaa:
		return "https://nyaa.si", true
	case SourceSukebei:
		return "https://sukebei.nyaa.si", true
	}
	return "", false
}

// Category is a top-level listing category and its subcategories.
type Category struct {
	Name          string
	Subcategories []string
}

// Categories returns the category table for the source; nil if unknown.
// Index 0 is always "All categories".
func (s Source) Categories() []Category {
	switch s {
	case SourceNyaa:
		return nyaaCategories
	case SourceSukebei:
		return sukebeiCategories
	}
	return nil
}

var nyaaCategories = []Category{
	{Name: "All categories"},
	{Name: "Anime", Subcategories: []string{"Anime Music Video", "English-translated", "Non-English-translated", "Raw"}},
	{Name: "Audio", Subcategories: []string{"Lossless", "Lossy"}},
	{Name: "Literature", Subcategories: []string{"English-translated", "Non-English-translated", "Raw"}},
	{Name: "Live Action", Subcategories: []string{"English-translated", "Idol/Promotional Video", "Non-English-translated", "Raw"}},
	{Name: "Pictures", Subcategories: []string{"Graphics", "Photos"}},
	{Name: "Software", Subcategories: []string{"Applications", "Games"}},
}

var sukebeiCategories = []Category{
	{Name: "All categories"},
	{Name: "Art", Subcategories: []string{"Anime", "Doujinshi", "Games", "Manga", "Pictures"}},
	{Name: "Real Life", Subcategories: []string{"Photobooks and Pictures", "Videos"}},
}

// Filters lists the listing filters by index.
var Filters = []string{"No filter", "No remakes", "Trusted only"}

// DefaultFilter is "Trusted only".
const DefaultFilter = 2

// SearchQuery describes a listing page to fetch.
type SearchQuery struct {
	Source      Source
	Filter      int
	Category    int
	Subcategory int
	Page        uint64
	Term        string
	// User switches the listing to a user's uploads.
	User string
}

// Validate returns an error if the query cannot be turned into a URL.
func (q *SearchQuery) Validate() error {
	if _, ok := q.Source.BaseURL(); !ok {
		return Errorf(EINVALID, "invalid source %s", q.Source)
	}
	if q.Filter < 0 || q.Filter >= len(Filters) {
		return Errorf(EINVALID, "filter out of bounds: %d available, got %d", len(Filters), q.Filter)
	}

	categories := q.Source.Categories()
	if q.Category < 0 || q.Category >= len(categories) {
		return Errorf(EINVALID, "category out of bounds: %d available, got %d", len(categories), q.Category)
	}

	subcategories := categories[q.Category].Subcategories
	if len(subcategories) == 0 {
		if q.Subcategory != 0 {
			return Errorf(EINVALID, "subcategory must be 0 for categories without subcategories, got %d", q.Subcategory)
		}
	} else if q.Subcategory < 0 || q.Subcategory > len(subcategories) {
		return Errorf(EINVALID, "subcategory out of bounds: %d available, got %d", len(subcategories), q.Subcategory)
	}
	return nil
}

// URL returns the listing URL for the query.
func (q *SearchQuery) URL() (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}
	base, _ := q.Source.BaseURL()

	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	u.Path = "/"
	if q.User != "" {
		u.Path = "/user/" + q.User
	}

	page := q.Page
	if page == 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("f", strconv.Itoa(q.Filter))
	params.Set("c", fmt.Sprintf("%d_%d", q.Category, q.Subcategory))
	params.Set("p", strconv.FormatUint(page, 10))
	params.Set("q", q.Term)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// FormatCategories renders the category table of a source as
// "index - name" lines with subcategories indented below their parent.
func FormatCategories(s Source) string {
	var b strings.Builder
	for i, c := range s.Categories() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d - %s", i, c.Name)
		for j, sub := range c.Subcategories {
			fmt.Fprintf(&b, "\n   %d - %s", j+1, sub)
		}
	}
	return b.String()
}
