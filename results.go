package nyaa

import "strings"

// Links holds the download links of an entry.
type Links struct {
	// Torrent is the absolute URL of the .torrent file.
	Torrent string `json:"torrent"`
	// Magnet is the raw magnet URI.
	Magnet string `json:"magnet"`
	// ParsedMagnet is nil when Magnet could not be parsed.
	ParsedMagnet *Magnet `json:"-"`
}

// Sizes holds the size of an entry as displayed and as parsed.
// The two parsed values are independent and may disagree.
type Sizes struct {
	// Raw is the human readable size, e.g. "1.5 GiB".
	Raw string `json:"raw"`
	// ParsedFromMagnet is the exact length from the magnet URI, if present.
	ParsedFromMagnet *uint64 `json:"parsed_from_magnet"`
	// ParsedFromRaw is Raw converted to bytes, if it could be parsed.
	ParsedFromRaw *uint64 `json:"parsed_from_raw"`
}

// Entry is one row of a listing.
type Entry struct {
	SourceURL string    `json:"url"`
	Kind      EntryKind `json:"kind"`
	Name      string    `json:"name"`
	Comments  uint32    `json:"comments"`
	Links     Links     `json:"links"`
	Sizes     Sizes     `json:"sizes"`
	Date      string    `json:"date"`
	Seeders   uint32    `json:"seeders"`
	Leechers  uint32    `json:"leechers"`
	Downloads uint32    `json:"downloads"`
}

// Key identifies the entry across pages and fetches. It is the magnet info
// hash when one is available, otherwise the entry URL.
func (e *Entry) Key() string {
	if e.Links.ParsedMagnet != nil {
		if h := e.Links.ParsedMagnet.InfoHash(); h != "" {
			return strings.ToLower(h)
		}
	}
	return e.SourceURL
}

// Page is a link to one page of a listing.
type Page struct {
	// URL can be fetched and handed back to a Parser.
	URL    string `json:"url"`
	Number uint32 `json:"number"`
}

// Pagination lists the pages around the current one.
type Pagination struct {
	Pages   []Page `json:"pages"`
	Current Page   `json:"current"`
}

// IsCurrent reports whether p is the current page.
func (p *Pagination) IsCurrent(page Page) bool {
	return page.Number == p.Current.Number
}

// Next returns the page following the current one, if it is listed.
func (p *Pagination) Next() (Page, bool) {
	for _, page := range p.Pages {
		if page.Number == p.Current.Number+1 {
			return page, true
		}
	}
	return Page{}, false
}

// Results is everything extracted from one listing page.
type Results struct {
	// Entries are in chronological order (newest last).
	Entries    []*Entry    `json:"entries"`
	Pagination *Pagination `json:"pagination"`
}

// EmptyResults returns a result set with no entries and no pagination.
func EmptyResults() *Results {
	return &Results{Entries: []*Entry{}}
}

// Latest returns a copy of r keeping only the n most recent entries.
// A negative n keeps every entry.
func (r *Results) Latest(n int) *Results {
	entries := r.Entries
	if n >= 0 && n < len(entries) {
		entries = entries[len(entries)-n:]
	}
	return &Results{
		Entries:    append([]*Entry{}, entries...),
		Pagination: r.Pagination,
	}
}

// Validate returns an error if the entry cannot be stored.
func (e *Entry) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "entry URL required")
	}
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	return nil
}
