package nyaa

import (
	"fmt"
	"strings"
)

// Output field names accepted by Fields.
const (
	FieldName        = "name"
	FieldURL         = "url"
	FieldKind        = "kind"
	FieldComments    = "comments"
	FieldTorrent     = "torrent"
	FieldMagnet      = "magnet"
	FieldSize        = "size"
	FieldMagnetSize  = "magnet_size"
	FieldParsedSize  = "parsed_size"
	FieldDate        = "date"
	FieldSeeders     = "seeders"
	FieldLeechers    = "leechers"
	FieldDownloads   = "downloads"
	FieldPages       = "pages"
	FieldCurrentPage = "current_page"
)

// AllFields lists every output field in display order.
var AllFields = []string{
	FieldName, FieldURL, FieldKind, FieldComments, FieldTorrent, FieldMagnet,
	FieldSize, FieldMagnetSize, FieldParsedSize, FieldDate, FieldSeeders,
	FieldLeechers, FieldDownloads, FieldPages, FieldCurrentPage,
}

// Fields selects which fields FormatResults prints.
// A nil or empty set selects every field.
type Fields map[string]bool

// NewFields builds a field set, rejecting unknown names.
func NewFields(names []string) (Fields, error) {
	fields := make(Fields, len(names))
	for _, name := range names {
		known := false
		for _, f := range AllFields {
			if f == name {
				known = true
				break
			}
		}
		if !known {
			return nil, Errorf(EINVALID, "unknown field %q", name)
		}
		fields[name] = true
	}
	return fields, nil
}

// Has reports whether the field should be printed.
func (f Fields) Has(name string) bool {
	return len(f) == 0 || f[name]
}

// FormatResults renders results as indented human readable text.
func FormatResults(r *Results, fields Fields) string {
	var b strings.Builder

	for _, e := range r.Entries {
		if fields.Has(FieldName) {
			b.WriteString(e.Name + "\n")
		}
		if fields.Has(FieldURL) {
			fmt.Fprintf(&b, "\tURL:        %s\n", e.SourceURL)
		}
		if fields.Has(FieldKind) {
			fmt.Fprintf(&b, "\tKind:       %s\n", e.Kind)
		}
		if fields.Has(FieldComments) {
			fmt.Fprintf(&b, "\tComments:   %d\n", e.Comments)
		}
		if fields.Has(FieldTorrent) {
			fmt.Fprintf(&b, "\tTorrent:    %s\n", e.Links.Torrent)
		}
		if fields.Has(FieldMagnet) {
			fmt.Fprintf(&b, "\tMagnet:     %s\n", e.Links.Magnet)
		}
		if fields.Has(FieldSize) {
			fmt.Fprintf(&b, "\tSize:       %s", e.Sizes.Raw)
			var parsed []string
			if fields.Has(FieldMagnetSize) {
				parsed = append(parsed, "magnet: "+formatOptional(e.Sizes.ParsedFromMagnet))
			}
			if fields.Has(FieldParsedSize) {
				parsed = append(parsed, "parsed: "+formatOptional(e.Sizes.ParsedFromRaw))
			}
			if len(parsed) > 0 {
				b.WriteString(" (" + strings.Join(parsed, ", ") + ")")
			}
			b.WriteString("\n")
		}
		if fields.Has(FieldDate) {
			fmt.Fprintf(&b, "\tDate added: %s\n", e.Date)
		}
		if fields.Has(FieldSeeders) {
			fmt.Fprintf(&b, "\tSeeders:    %d\n", e.Seeders)
		}
		if fields.Has(FieldLeechers) {
			fmt.Fprintf(&b, "\tLeechers:   %d\n", e.Leechers)
		}
		if fields.Has(FieldDownloads) {
			fmt.Fprintf(&b, "\tDownloads:  %d\n", e.Downloads)
		}
	}

	if fields.Has(FieldPages) && r.Pagination != nil {
		b.WriteString("Pages: ")
		for _, page := range r.Pagination.Pages {
			fmt.Fprintf(&b, "%d ", page.Number)
			if r.Pagination.IsCurrent(page) && fields.Has(FieldCurrentPage) {
				b.WriteString("(current) ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatOptional(v *uint64) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *v)
}
