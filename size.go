package nyaa

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// sizeSuffixes are ordered so that suffix i means 1024^i bytes.
var sizeSuffixes = [...]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// Size parser errors.
var (
	ErrEmptySize     = errors.New("empty size string")
	ErrMissingSuffix = errors.New("unable to find size suffix")
)

// MagnitudeError is returned when the number part of a size is not a float.
type MagnitudeError struct {
	Token string
}

func (e *MagnitudeError) Error() string {
	return fmt.Sprintf("failed to parse %s as a number", e.Token)
}

// SuffixError is returned for unit suffixes outside B..EiB.
type SuffixError struct {
	Token string
}

func (e *SuffixError) Error() string {
	return fmt.Sprintf("unable to find suffix %s in suffixes list", e.Token)
}

// ParseSize parses a size string such as "1.5 KiB" to a number of bytes.
// Supported suffixes are B, KiB, MiB, GiB, TiB, PiB and EiB. The result is
// truncated toward zero; out of range values saturate.
func ParseSize(s string) (uint64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, ErrEmptySize
	}

	magnitude, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, &MagnitudeError{Token: fields[0]}
	}

	if len(fields) < 2 {
		return 0, ErrMissingSuffix
	}

	idx := -1
	for i, suffix := range sizeSuffixes {
		if suffix == fields[1] {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, &SuffixError{Token: fields[1]}
	}

	return saturateUint64(magnitude * float64(uint64(1)<<(10*idx))), nil
}

func saturateUint64(f float64) uint64 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxUint64:
		return math.MaxUint64
	}
	return uint64(f)
}
