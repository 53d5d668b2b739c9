package nyaa

import "encoding/json"

// Kind is the closed set of entry types a listing distinguishes.
type Kind int

// Entry kinds. KindUnknown covers status markers outside the lookup table.
const (
	KindUnknown Kind = iota
	KindDeleted
	KindHidden
	KindRemake
	KindTrusted
	KindDefault
)

var kindNames = [...]string{
	KindUnknown: "Unknown",
	KindDeleted: "Deleted",
	KindHidden:  "Hidden",
	KindRemake:  "Remake",
	KindTrusted: "Trusted",
	KindDefault: "Default",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// kindLabels maps row status classes to kinds.
var kindLabels = map[string]Kind{
	"deleted": KindDeleted,
	"warning": KindHidden,
	"danger":  KindRemake,
	"success": KindTrusted,
	"default": KindDefault,
}

// EntryKind is the type of an entry together with the status marker it was
// derived from. Label is kept verbatim so unknown markers are not lost.
type EntryKind struct {
	Kind  Kind
	Label string
}

// KindFromLabel maps a row status marker to an EntryKind.
// Labels outside the lookup table produce KindUnknown.
func KindFromLabel(label string) EntryKind {
	return EntryKind{Kind: kindLabels[label], Label: label}
}

// IsUnknown reports whether the marker was not recognized.
func (k EntryKind) IsUnknown() bool {
	return k.Kind == KindUnknown
}

// String returns the kind name, or Unknown(label) for unrecognized markers.
func (k EntryKind) String() string {
	if k.IsUnknown() {
		return "Unknown(" + k.Label + ")"
	}
	return k.Kind.String()
}

// MarshalJSON encodes known kinds as their name and unknown kinds as
// {"Unknown": label}.
func (k EntryKind) MarshalJSON() ([]byte, error) {
	if k.IsUnknown() {
		return json.Marshal(map[string]string{"Unknown": k.Label})
	}
	return json.Marshal(k.Kind.String())
}
