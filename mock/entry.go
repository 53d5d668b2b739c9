package mock

import (
	"context"

	"github.com/fwojciec/nyaa"
)

var _ nyaa.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of nyaa.EntryService.
type EntryService struct {
	CreateEntriesFn func(ctx context.Context, entries []*nyaa.Entry) ([]*nyaa.Entry, error)
	FindEntriesFn   func(ctx context.Context, filter nyaa.EntryFilter) ([]*nyaa.StoredEntry, error)
}

func (s *EntryService) CreateEntries(ctx context.Context, entries []*nyaa.Entry) ([]*nyaa.Entry, error) {
	return s.CreateEntriesFn(ctx, entries)
}

func (s *EntryService) FindEntries(ctx context.Context, filter nyaa.EntryFilter) ([]*nyaa.StoredEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}
