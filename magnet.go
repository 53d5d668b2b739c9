package nyaa

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Magnet parameter keys.
const (
	MagnetExactTopic  = "xt"
	MagnetDisplayName = "dn"
	MagnetExactLength = "xl"
	MagnetTracker     = "tr"
)

const (
	magnetScheme = "magnet:?"
	btihPrefix   = "urn:btih:"
)

// ErrNotMagnet is returned by ParseMagnet for strings without the magnet scheme.
var ErrNotMagnet = errors.New("not a magnet uri")

// Magnet holds the parameters of a magnet URI. A key may appear more than
// once (e.g. several trackers); every value is kept in order.
type Magnet struct {
	params map[string][]string
}

// ParseMagnet parses a magnet URI such as
// "magnet:?xt=urn:btih:...&dn=Name&tr=udp://a&tr=udp://b".
// Pairs are split on the first "=" only and values are percent-decoded.
func ParseMagnet(s string) (*Magnet, error) {
	if len(s) < len(magnetScheme) || !strings.EqualFold(s[:len(magnetScheme)], magnetScheme) {
		return nil, ErrNotMagnet
	}

	params := make(map[string][]string)
	for pair := range strings.SplitSeq(s[len(magnetScheme):], "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("magnet parameter %s: %w", key, err)
		}
		params[key] = append(params[key], decoded)
	}
	return &Magnet{params: params}, nil
}

// Get returns the first value for key, or "" if the key is absent.
func (m *Magnet) Get(key string) string {
	if vs := m.params[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Values returns every value for key in the order they appeared.
func (m *Magnet) Values(key string) []string {
	return m.params[key]
}

// Has reports whether key appeared at least once.
func (m *Magnet) Has(key string) bool {
	_, ok := m.params[key]
	return ok
}

// Length returns the exact length in bytes (xl), if present and valid.
func (m *Magnet) Length() (uint64, bool) {
	if !m.Has(MagnetExactLength) {
		return 0, false
	}
	n, err := strconv.ParseUint(m.Get(MagnetExactLength), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// InfoHash returns the BitTorrent info hash from the first urn:btih topic.
func (m *Magnet) InfoHash() string {
	for _, xt := range m.Values(MagnetExactTopic) {
		if len(xt) > len(btihPrefix) && strings.EqualFold(xt[:len(btihPrefix)], btihPrefix) {
			return xt[len(btihPrefix):]
		}
	}
	return ""
}

// DisplayName returns the dn parameter.
func (m *Magnet) DisplayName() string {
	return m.Get(MagnetDisplayName)
}

// Trackers returns every tr parameter.
func (m *Magnet) Trackers() []string {
	return m.Values(MagnetTracker)
}
