package tape

import (
	"errors"
	"fmt"
)

// DefaultSize is the capacity used when none is configured.
const DefaultSize = 64

// Tape holds the whole machine state: frames, pointers, counters and the name table.
type Tape struct {
	size   int     // fixed capacity
	frames []Value // frame values, len(frames) == size

	fp int // frame pointer, 0 <= fp <= size
	ic int // instruction counter
	ns int // number of segments created
	sp int // segment pointer (ordinal of the latest segment)
	lc int // line counter

	names  []string // bound names, insertion order
	lookup *Lookup  // name and segment locations
	scope  []int    // frame view range
}

// New creates a tape of size frames, each holding Zero.
// A negative size is treated as 0.
func New(size int) *Tape {
	if size < 0 {
		size = 0
	}

	frames := make([]Value, size)
	for i := range frames {
		frames[i] = Zero
	}

	return &Tape{
		size:   size,
		frames: frames,
		names:  make([]string, 0),
		lookup: newLookup(),
		scope:  make([]int, 0),
	}
}

// MoveForward advances the frame pointer.
// At capacity the pointer is left unchanged and ErrCapacityExceeded is returned.
func (t *Tape) MoveForward() error {
	if t.fp == t.size {
		return ErrCapacityExceeded
	}
	t.fp++
	return nil
}

// MoveBackward moves the frame pointer back; at frame 0 it returns ErrUnderflow.
func (t *Tape) MoveBackward() error {
	if t.fp == 0 {
		return ErrUnderflow
	}
	t.fp--
	return nil
}

// WriteCurrent stores v in the frame under the pointer.
func (t *Tape) WriteCurrent(v Value) error {
	if t.fp == t.size {
		return fmt.Errorf("%w: no frame at %d to write", ErrCapacityExceeded, t.fp)
	}
	t.frames[t.fp] = v
	return nil
}

// Read returns the value of frame index.
func (t *Tape) Read(index int) (Value, error) {
	if index < 0 || index >= t.size {
		return Value{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, t.size)
	}
	return t.frames[index], nil
}

// ReadCurrent returns the value under the pointer.
func (t *Tape) ReadCurrent() (Value, error) {
	if t.fp == t.size {
		return Value{}, fmt.Errorf("%w: no frame at %d to read", ErrCapacityExceeded, t.fp)
	}
	return t.frames[t.fp], nil
}

// Bind records name -> entry. An existing binding is never overwritten,
// and a name cannot point at the capacity marker since there is no frame there.
func (t *Tape) Bind(name string, e LookupEntry) error {
	if _, ok := t.lookup.Get(name); ok {
		return fmt.Errorf("%w: %q", ErrNameAlreadyBound, name)
	}
	if e.Index < 0 || e.Index >= t.size {
		return fmt.Errorf("%w: no frame at %d to bind %q", ErrCapacityExceeded, e.Index, name)
	}
	t.lookup.put(name, e)
	t.names = append(t.names, name)
	return nil
}

// Resolve returns the location bound to name.
func (t *Tape) Resolve(name string) (LookupEntry, error) {
	if !t.IsBound(name) {
		return LookupEntry{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	e, _ := t.lookup.Get(name)
	return e, nil
}

// IsBound reports whether name is in the set of bound names.
func (t *Tape) IsBound(name string) bool {
	for _, n := range t.names {
		if n == name {
			return true
		}
	}
	return false
}

// AnchorSegment counts a new segment and points the segment pointer at it.
func (t *Tape) AnchorSegment() int {
	t.ns++
	t.sp = t.ns
	return t.ns
}

// AddAnonymousSegment records an unnamed segment starting at frame index.
// Its key cannot collide with a name because names never contain parentheses.
func (t *Tape) AddAnonymousSegment(ordinal, index int) Binding {
	b := Binding{
		Key:   fmt.Sprintf("(S%d)", ordinal),
		Entry: NewSegmentAnchor(ordinal, index),
	}
	t.lookup.put(b.Key, b.Entry)
	return b
}

// Tick counts one dispatched instruction.
func (t *Tape) Tick() { t.ic++ }

// NextLine counts one program line fed to the machine.
func (t *Tape) NextLine() int {
	t.lc++
	return t.lc
}

func (t *Tape) Size() int { return t.size }
func (t *Tape) FP() int   { return t.fp }
func (t *Tape) IC() int   { return t.ic }
func (t *Tape) NS() int   { return t.ns }
func (t *Tape) SP() int   { return t.sp }
func (t *Tape) LC() int   { return t.lc }

// Names returns a copy of the bound names in binding order.
func (t *Tape) Names() []string {
	return append([]string(nil), t.names...)
}

// Lookup returns the lookup table. Callers must not keep it past the tape's lifetime.
func (t *Tape) Lookup() *Lookup {
	return t.lookup
}

// Frames returns a copy of all frame values.
func (t *Tape) Frames() []Value {
	return append([]Value(nil), t.frames...)
}

// Scope returns a copy of the frame view range.
func (t *Tape) Scope() []int {
	return append([]int(nil), t.scope...)
}

var (
	ErrCapacityExceeded = errors.New("frame pointer reached tape capacity")
	ErrUnderflow        = errors.New("frame pointer at 0, cannot decrement")
	ErrIndexOutOfRange  = errors.New("read outside frame index range")
	ErrNameAlreadyBound = errors.New("name already in use")
	ErrUnknownName      = errors.New("unrecognized name")
)
