package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timeFormat keeps lexical and chronological order the same.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// formatTime formats t for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

// parseRFC3339 parses a stored timestamp.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite only accepts OFFSET after LIMIT, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// formatSize stores a size as text since SQLite integers are signed.
func formatSize(v *uint64) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: strconv.FormatUint(*v, 10), Valid: true}
}

// parseSize reverses formatSize.
func parseSize(v sql.NullString, fieldName string) (*uint64, error) {
	if !v.Valid {
		return nil, nil
	}
	n, err := strconv.ParseUint(v.String, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return &n, nil
}
