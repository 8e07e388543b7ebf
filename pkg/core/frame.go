package core

import (
	"fmt"

	"tapebox/pkg/lexer"
	"tapebox/pkg/names"
	"tapebox/pkg/tape"
)

// Inc moves the frame pointer forward
func Inc(t *tape.Tape) error {
	return t.MoveForward()
}

// Dec moves the frame pointer back
func Dec(t *tape.Tape) error {
	return t.MoveBackward()
}

// Write stores payload as a string in the current frame
func Write(t *tape.Tape, payload string) error {
	if payload == "" {
		return fmt.Errorf("%w: value to write after .w", ErrMissingArgument)
	}
	return t.WriteCurrent(tape.NewString(payload))
}

// ReadCurrent returns the value under the frame pointer
func ReadCurrent(t *tape.Tape) (tape.Value, error) {
	return t.ReadCurrent()
}

// ReadIndex reads a frame addressed by number. An index outside the tape is fatal.
func ReadIndex(t *tape.Tape, lexeme string) (tape.Value, error) {
	index, err := lexer.IndexValue(lexeme)
	if err != nil {
		return tape.Value{}, Fatal(fmt.Errorf("%w: %s: %w", tape.ErrIndexOutOfRange, lexeme, err))
	}

	v, err := t.Read(index)
	if err != nil {
		return tape.Value{}, Fatal(err)
	}
	return v, nil
}

// ReadName reads the frame a name is bound to
func ReadName(t *tape.Tape, name string) (tape.Value, error) {
	if err := RequireName(name); err != nil {
		return tape.Value{}, err
	}

	e, err := t.Resolve(name)
	if err != nil {
		return tape.Value{}, err
	}
	return t.Read(e.Index)
}

// NameFrame binds name to the current frame
func NameFrame(t *tape.Tape, name string) (tape.Binding, error) {
	if name == "" {
		return tape.Binding{}, fmt.Errorf("%w: name after .n", ErrMissingArgument)
	}
	if err := RequireName(name); err != nil {
		return tape.Binding{}, err
	}

	b := tape.Binding{Key: name, Entry: tape.NewPoint(t.FP())}
	if err := t.Bind(b.Key, b.Entry); err != nil {
		return tape.Binding{}, err
	}
	return b, nil
}

// StartSegment counts a new segment anchored at the current frame.
// Without a name the segment is recorded anonymously; named reports whether .n was given.
func StartSegment(t *tape.Tape, named bool, name string) (tape.Binding, error) {
	ordinal := t.AnchorSegment()

	if !named {
		return t.AddAnonymousSegment(ordinal, t.FP()), nil
	}

	if name == "" {
		return tape.Binding{}, fmt.Errorf("%w: segment (.s .n name) missing name", ErrMissingArgument)
	}
	if err := RequireName(name); err != nil {
		return tape.Binding{}, err
	}

	b := tape.Binding{Key: name, Entry: tape.NewSegmentAnchor(ordinal, t.FP())}
	if err := t.Bind(b.Key, b.Entry); err != nil {
		return tape.Binding{}, err
	}
	return b, nil
}

// RequireName validates a token used as a name.
// A leading digit is fatal, other invalid characters are reported.
func RequireName(token string) error {
	switch v := names.Validate(token); v {
	case names.Valid:
		return nil
	case names.InvalidLeadingDigit:
		return Fatal(fmt.Errorf("%w: %q", v.Err(), token))
	default:
		return fmt.Errorf("%w: %q", v.Err(), token)
	}
}
