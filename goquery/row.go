package goquery

import (
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nyaa"
)

// Row selectors, relative to a tr of the results table. The name cell spans
// two columns but is still the second td element.
const (
	selectorMagnet    = "td.text-center:nth-child(3) > a > i.fa-magnet"
	selectorTorrent   = "td.text-center:nth-child(3) > a > i.fa-download"
	selectorName      = "td:nth-child(2) > a:not(.comments)"
	selectorComments  = "td:nth-child(2) > a.comments"
	selectorSize      = "td.text-center:nth-child(4)"
	selectorDate      = "td.text-center:nth-child(5)"
	selectorSeeders   = "td.text-center:nth-child(6)"
	selectorLeechers  = "td.text-center:nth-child(7)"
	selectorDownloads = "td.text-center:nth-child(8)"
)

// extractRow builds an Entry from one table row. Every field is required
// except the comment count, which defaults to zero, and the parsed magnet
// and size values, which are left nil when they cannot be parsed.
func extractRow(row *goquery.Selection, base *url.URL) (*nyaa.Entry, error) {
	rawMagnet, err := parentHref(row, selectorMagnet, base)
	if err != nil {
		return nil, err
	}
	// A magnet that cannot be parsed still leaves the raw link usable.
	magnet, _ := nyaa.ParseMagnet(rawMagnet)

	rawSize, err := text(row, selectorSize)
	if err != nil {
		return nil, err
	}

	title, err := first(row, selectorName)
	if err != nil {
		return nil, err
	}
	sourceURL, err := href(title, base)
	if err != nil {
		return nil, err
	}

	class, err := attr(row, "class")
	if err != nil {
		return nil, err
	}

	comments, err := extractComments(row)
	if err != nil {
		return nil, err
	}

	torrent, err := parentHref(row, selectorTorrent, base)
	if err != nil {
		return nil, err
	}

	date, err := text(row, selectorDate)
	if err != nil {
		return nil, err
	}

	seeders, err := count(row, selectorSeeders, "seeders")
	if err != nil {
		return nil, err
	}
	leechers, err := count(row, selectorLeechers, "leechers")
	if err != nil {
		return nil, err
	}
	downloads, err := count(row, selectorDownloads, "downloads")
	if err != nil {
		return nil, err
	}

	sizes := nyaa.Sizes{Raw: rawSize}
	if magnet != nil {
		if n, ok := magnet.Length(); ok {
			sizes.ParsedFromMagnet = &n
		}
	}
	if n, err := nyaa.ParseSize(rawSize); err == nil {
		sizes.ParsedFromRaw = &n
	}

	return &nyaa.Entry{
		SourceURL: sourceURL,
		Kind:      nyaa.KindFromLabel(class),
		Name:      trimmedText(title),
		Comments:  comments,
		Links: nyaa.Links{
			Torrent:      torrent,
			Magnet:       rawMagnet,
			ParsedMagnet: magnet,
		},
		Sizes:     sizes,
		Date:      date,
		Seeders:   seeders,
		Leechers:  leechers,
		Downloads: downloads,
	}, nil
}

// extractComments returns the comment count, or zero if the row has no
// comment marker.
func extractComments(row *goquery.Selection) (uint32, error) {
	marker := row.Find(selectorComments).First()
	if marker.Length() == 0 {
		return 0, nil
	}
	return parseCount("comments", trimmedText(marker))
}

// count parses the text of the first match of selector as a counter.
func count(row *goquery.Selection, selector, field string) (uint32, error) {
	raw, err := text(row, selector)
	if err != nil {
		return 0, err
	}
	return parseCount(field, raw)
}

func parseCount(field, raw string) (uint32, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &nyaa.FieldError{Field: field, Raw: raw, Err: err}
	}
	return uint32(n), nil
}
