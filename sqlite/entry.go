package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/nyaa"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ nyaa.EntryService = (*EntryService)(nil)

// EntryService implements nyaa.EntryService using SQLite.
type EntryService struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db, Now: time.Now}
}

// hashKey computes the xxHash of an entry key as a fixed width hex string.
func hashKey(key string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(key))
}

// CreateEntries stores entries not seen before and returns them in order.
func (s *EntryService) CreateEntries(ctx context.Context, entries []*nyaa.Entry) ([]*nyaa.Entry, error) {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (id, key_hash, entry_key, source_url, kind, name, comments, torrent_url, magnet,
			size_raw, size_from_magnet, size_from_raw, date, seeders, leechers, downloads, first_seen_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key_hash) DO NOTHING
	`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	seenAt := formatTime(s.Now())
	created := make([]*nyaa.Entry, 0, len(entries))
	for _, e := range entries {
		key := e.Key()
		res, err := stmt.ExecContext(ctx,
			uuid.New().String(), hashKey(key), key, e.SourceURL, e.Kind.Label, e.Name, e.Comments,
			e.Links.Torrent, e.Links.Magnet, e.Sizes.Raw,
			formatSize(e.Sizes.ParsedFromMagnet), formatSize(e.Sizes.ParsedFromRaw),
			e.Date, e.Seeders, e.Leechers, e.Downloads, seenAt)
		if err != nil {
			return nil, fmt.Errorf("failed to store entry %s: %w", e.SourceURL, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if n > 0 {
			created = append(created, e)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

// FindEntries retrieves stored entries matching the filter, newest first.
func (s *EntryService) FindEntries(ctx context.Context, filter nyaa.EntryFilter) ([]*nyaa.StoredEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, entry_key, source_url, kind, name, comments, torrent_url, magnet,
		size_raw, size_from_magnet, size_from_raw, date, seeders, leechers, downloads, first_seen_at
		FROM entries WHERE 1=1`)

	if filter.Name != nil {
		query.WriteString(" AND name LIKE ? ESCAPE '\\'")
		args = append(args, "%"+escapeLike(*filter.Name)+"%")
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, *filter.Kind)
	}

	query.WriteString(" ORDER BY first_seen_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stored []*nyaa.StoredEntry
	for rows.Next() {
		se, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		stored = append(stored, se)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stored, nil
}

func scanEntry(rows *sql.Rows) (*nyaa.StoredEntry, error) {
	var (
		e                   nyaa.Entry
		se                  nyaa.StoredEntry
		label               string
		fromMagnet, fromRaw sql.NullString
		firstSeenAt         string
	)
	err := rows.Scan(&se.ID, &se.Key, &e.SourceURL, &label, &e.Name, &e.Comments,
		&e.Links.Torrent, &e.Links.Magnet, &e.Sizes.Raw, &fromMagnet, &fromRaw,
		&e.Date, &e.Seeders, &e.Leechers, &e.Downloads, &firstSeenAt)
	if err != nil {
		return nil, err
	}

	e.Kind = nyaa.KindFromLabel(label)
	if e.Links.Magnet != "" {
		e.Links.ParsedMagnet, _ = nyaa.ParseMagnet(e.Links.Magnet)
	}
	if e.Sizes.ParsedFromMagnet, err = parseSize(fromMagnet, "size_from_magnet"); err != nil {
		return nil, err
	}
	if e.Sizes.ParsedFromRaw, err = parseSize(fromRaw, "size_from_raw"); err != nil {
		return nil, err
	}
	if se.FirstSeenAt, err = parseRFC3339(firstSeenAt, "first_seen_at"); err != nil {
		return nil, err
	}

	se.Entry = &e
	return &se, nil
}

// escapeLike escapes LIKE wildcards so the value matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
