package tape

import "fmt"

type EntryKind int

const (
	Point EntryKind = iota
	SegmentAnchor
)

// LookupEntry is the location a key of the lookup table resolves to.
// A Point binds a name to a frame; a SegmentAnchor records where a segment starts.
type LookupEntry struct {
	Kind    EntryKind
	Index   int // frame index
	Segment int // segment ordinal, 0 for plain frame names
}

// NewPoint creates an entry naming a single frame.
func NewPoint(index int) LookupEntry {
	return LookupEntry{Kind: Point, Index: index}
}

// NewSegmentAnchor creates an entry for segment ordinal starting at frame index.
func NewSegmentAnchor(ordinal, index int) LookupEntry {
	return LookupEntry{Kind: SegmentAnchor, Index: index, Segment: ordinal}
}

// String returns a string representation of the entry
func (e LookupEntry) String() string {
	if e.Kind == SegmentAnchor {
		return fmt.Sprintf("(%d, %d)", e.Segment, e.Index)
	}
	return fmt.Sprintf("%d", e.Index)
}

// Binding is one key of the lookup table with its entry.
type Binding struct {
	Key   string
	Entry LookupEntry
}

// String returns a string representation of the binding
func (b Binding) String() string {
	return fmt.Sprintf("{%s: %s}", b.Key, b.Entry)
}

// Lookup is an insertion-ordered table of key -> entry.
type Lookup struct {
	order []string
	index map[string]LookupEntry
}

func newLookup() *Lookup {
	return &Lookup{
		order: make([]string, 0),
		index: make(map[string]LookupEntry),
	}
}

// Get returns the entry bound to key
func (l *Lookup) Get(key string) (LookupEntry, bool) {
	e, ok := l.index[key]
	return e, ok
}

// put inserts key; it reports false and leaves the table untouched if key exists.
func (l *Lookup) put(key string, e LookupEntry) bool {
	if _, ok := l.index[key]; ok {
		return false
	}
	l.order = append(l.order, key)
	l.index[key] = e
	return true
}

// Len returns the number of bindings
func (l *Lookup) Len() int {
	return len(l.order)
}

// Bindings returns every binding in insertion order.
func (l *Lookup) Bindings() []Binding {
	out := make([]Binding, 0, len(l.order))
	for _, k := range l.order {
		out = append(out, Binding{Key: k, Entry: l.index[k]})
	}
	return out
}
