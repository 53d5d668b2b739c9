package nyaa_test

import (
	"math"
	"testing"

	"github.com/fwojciec/nyaa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	t.Parallel()

	t.Run("parses integer amount", func(t *testing.T) {
		t.Parallel()

		n, err := nyaa.ParseSize("8 KiB")
		require.NoError(t, err)
		assert.Equal(t, uint64(8192), n)
	})

	t.Run("parses floating point amount", func(t *testing.T) {
		t.Parallel()

		n, err := nyaa.ParseSize("1.5 KiB")
		require.NoError(t, err)
		assert.Equal(t, uint64(1536), n)
	})

	t.Run("supports every suffix", func(t *testing.T) {
		t.Parallel()

		for i, suffix := range []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"} {
			n, err := nyaa.ParseSize("1 " + suffix)
			require.NoError(t, err, suffix)
			assert.Equal(t, uint64(1)<<(10*i), n, suffix)
		}
	})

	t.Run("truncates toward zero", func(t *testing.T) {
		t.Parallel()

		n, err := nyaa.ParseSize("1.9 B")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), n)
	})

	t.Run("saturates out of range values", func(t *testing.T) {
		t.Parallel()

		n, err := nyaa.ParseSize("100 EiB")
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64), n)

		n, err = nyaa.ParseSize("-1 KiB")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), n)
	})

	t.Run("returns error for empty string", func(t *testing.T) {
		t.Parallel()

		_, err := nyaa.ParseSize("")
		assert.ErrorIs(t, err, nyaa.ErrEmptySize)

		_, err = nyaa.ParseSize("   ")
		assert.ErrorIs(t, err, nyaa.ErrEmptySize)
	})

	t.Run("returns error for invalid magnitude", func(t *testing.T) {
		t.Parallel()

		_, err := nyaa.ParseSize("abc KiB")

		var magErr *nyaa.MagnitudeError
		require.ErrorAs(t, err, &magErr)
		assert.Equal(t, "abc", magErr.Token)
	})

	t.Run("returns error for missing suffix", func(t *testing.T) {
		t.Parallel()

		_, err := nyaa.ParseSize("1.2")
		assert.ErrorIs(t, err, nyaa.ErrMissingSuffix)
	})

	t.Run("returns error for unknown suffix", func(t *testing.T) {
		t.Parallel()

		_, err := nyaa.ParseSize("1.2 bits")

		var suffixErr *nyaa.SuffixError
		require.ErrorAs(t, err, &suffixErr)
		assert.Equal(t, "bits", suffixErr.Token)
		assert.Equal(t, "unable to find suffix bits in suffixes list", err.Error())
	})

	t.Run("suffixes are case sensitive", func(t *testing.T) {
		t.Parallel()

		_, err := nyaa.ParseSize("1 kib")

		var suffixErr *nyaa.SuffixError
		assert.ErrorAs(t, err, &suffixErr)
	})
}
