package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nyaa"
)

// Ensure LoggingEntryService implements nyaa.EntryService.
var _ nyaa.EntryService = (*LoggingEntryService)(nil)

// LoggingEntryService wraps an EntryService with logging.
type LoggingEntryService struct {
	next   nyaa.EntryService
	logger *slog.Logger
}

// NewLoggingEntryService creates a new LoggingEntryService.
func NewLoggingEntryService(next nyaa.EntryService, logger *slog.Logger) *LoggingEntryService {
	return &LoggingEntryService{next: next, logger: logger}
}

// CreateEntries delegates to the wrapped service and logs how many entries were new.
func (s *LoggingEntryService) CreateEntries(ctx context.Context, entries []*nyaa.Entry) (created []*nyaa.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("create entries",
			"count", len(entries),
			"new", len(created),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateEntries(ctx, entries)
}

// FindEntries delegates to the wrapped service.
func (s *LoggingEntryService) FindEntries(ctx context.Context, filter nyaa.EntryFilter) (entries []*nyaa.StoredEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find entries",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntries(ctx, filter)
}
