package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/nyaa/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Seen("c0ffee"))
	assert.True(t, f.Seen("c0ffee"))
	assert.False(t, f.Seen("https://nyaa.si/view/1"))
}

func TestFilter_Test(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("c0ffee"))
	// Test does not record the key.
	assert.False(t, f.Test("c0ffee"))

	f.Seen("c0ffee")
	assert.True(t, f.Test("c0ffee"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	for i := range 3 {
		f.Seen(fmt.Sprintf("hash-%d", i))
	}
	// Recording a key twice does not change the estimate much.
	f.Seen("hash-0")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}
