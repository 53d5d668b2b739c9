// Package bloom provides entry deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter remembers entry keys. False positives are possible, so an entry
// may occasionally be reported as seen when it was not; false negatives
// are not.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected keys at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records key and reports whether it was already present.
func (f *Filter) Seen(key string) bool {
	return f.f.TestAndAddString(key)
}

// Test reports whether key might have been recorded, without recording it.
func (f *Filter) Test(key string) bool {
	return f.f.TestString(key)
}

// EstimatedCount returns the approximate number of keys recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
