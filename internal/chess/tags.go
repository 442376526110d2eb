package chess

import "golang.org/x/exp/slices"

// Well-known PGN tag names.
const (
	EventTag  = "Event"
	SiteTag   = "Site"
	DateTag   = "Date"
	RoundTag  = "Round"
	WhiteTag  = "White"
	BlackTag  = "Black"
	ResultTag = "Result"
	FENTag    = "FEN"
	SetupTag  = "SetUp"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	return slices.Contains(SevenTagRoster, tag)
}

// Headers is an insertion-ordered set of PGN tag pairs. The zero value is
// ready to use.
type Headers struct {
	keys   []string
	values map[string]string
}

// Get returns a tag value, or empty string if not present.
func (h *Headers) Get(name string) string {
	return h.values[name]
}

// Lookup returns a tag value and whether it is present.
func (h *Headers) Lookup(name string) (string, bool) {
	v, ok := h.values[name]
	return v, ok
}

// Has returns true if the tag is present.
func (h *Headers) Has(name string) bool {
	_, ok := h.values[name]
	return ok
}

// Set adds or replaces a tag. A replaced tag keeps its original position.
func (h *Headers) Set(name, value string) {
	if h.values == nil {
		h.values = make(map[string]string)
	}
	if _, ok := h.values[name]; !ok {
		h.keys = append(h.keys, name)
	}
	h.values[name] = value
}

// Delete removes a tag if present.
func (h *Headers) Delete(name string) {
	if _, ok := h.values[name]; !ok {
		return
	}
	delete(h.values, name)
	if i := slices.Index(h.keys, name); i >= 0 {
		h.keys = slices.Delete(h.keys, i, i+1)
	}
}

// Keys returns the tag names in insertion order.
func (h *Headers) Keys() []string {
	return slices.Clone(h.keys)
}

// Len returns the number of tags.
func (h *Headers) Len() int {
	return len(h.keys)
}

// Clone returns an independent copy.
func (h *Headers) Clone() Headers {
	c := Headers{keys: slices.Clone(h.keys)}
	if h.values != nil {
		c.values = make(map[string]string, len(h.values))
		for k, v := range h.values {
			c.values[k] = v
		}
	}
	return c
}
