package core_test

import (
	"errors"
	"testing"

	"tapebox/pkg/core"
	"tapebox/pkg/names"
	"tapebox/pkg/tape"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		op       func(a, b tape.Value) (tape.Value, error)
		a, b     tape.Value
		expected tape.Value
		name     string
	}{
		{core.Add, tape.NewInt(2), tape.NewInt(3), tape.NewInt(5), "int add"},
		{core.Sub, tape.NewInt(2), tape.NewInt(3), tape.NewInt(-1), "int sub"},
		{core.Mul, tape.NewInt(4), tape.NewInt(3), tape.NewInt(12), "int mul"},
		{core.Div, tape.NewInt(7), tape.NewInt(2), tape.NewInt(3), "int div"},
		{core.Mod, tape.NewInt(7), tape.NewInt(3), tape.NewInt(1), "int mod"},
		{core.Add, tape.NewFloat(1.5), tape.NewInt(1), tape.NewFloat(2.5), "mixed add"},
		{core.Div, tape.NewFloat(1), tape.NewFloat(4), tape.NewFloat(0.25), "float div"},
		{core.Mod, tape.NewFloat(5.5), tape.NewInt(2), tape.NewFloat(1.5), "float mod"},
		{core.Add, tape.NewString("40"), tape.NewInt(2), tape.NewInt(42), "numeric string"},
		{core.Mul, tape.NewString("1.5"), tape.NewString("2"), tape.NewFloat(3), "float strings"},
		{core.Add, tape.NewString("foo"), tape.NewString("bar"), tape.NewString("foobar"), "concatenation"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.op(test.a, test.b)
			if err != nil {
				t.Fatal(err)
			}
			if got != test.expected {
				t.Errorf("expected %v (%v), got %v (%v)", test.expected, test.expected.Kind, got, got.Kind)
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, b := range []tape.Value{tape.NewInt(0), tape.NewFloat(0), tape.NewString("0")} {
		if _, err := core.Div(tape.NewInt(1), b); !errors.Is(err, core.ErrDivisionByZero) {
			t.Errorf("Div by %v: expected ErrDivisionByZero, got %v", b, err)
		}
		if _, err := core.Mod(tape.NewFloat(1), b); !errors.Is(err, core.ErrDivisionByZero) {
			t.Errorf("Mod by %v: expected ErrDivisionByZero, got %v", b, err)
		}
	}
}

func TestArithmeticOnText(t *testing.T) {
	if _, err := core.Sub(tape.NewString("foo"), tape.NewInt(1)); err == nil {
		t.Error("expected an error subtracting from text")
	}
}

func TestReadIndex(t *testing.T) {
	tp := tape.New(3)
	_ = tp.MoveForward()
	_ = core.Write(tp, "x")

	v, err := core.ReadIndex(tp, "1")
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "x" {
		t.Errorf("expected x, got %v", v)
	}

	_ = tp.MoveForward()
	_ = core.Write(tp, "y")
	if v, err := core.ReadIndex(tp, "٢"); err != nil || v.String() != "y" {
		t.Errorf("expected y through an arabic-indic index, got %v (%v)", v, err)
	}

	for _, idx := range []string{"3", "5", "٥", "99999999999999999999999"} {
		_, err := core.ReadIndex(tp, idx)
		if !core.IsFatal(err) {
			t.Errorf("index %s: expected fatal error, got %v", idx, err)
		}
		if !errors.Is(err, tape.ErrIndexOutOfRange) {
			t.Errorf("index %s: expected ErrIndexOutOfRange, got %v", idx, err)
		}
	}
}

func TestReadName(t *testing.T) {
	tp := tape.New(3)
	_ = tp.MoveForward()
	_ = core.Write(tp, "named")
	if _, err := core.NameFrame(tp, "here"); err != nil {
		t.Fatal(err)
	}
	_ = tp.MoveForward()

	v, err := core.ReadName(tp, "here")
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "named" {
		t.Errorf("expected named, got %v", v)
	}

	_, err = core.ReadName(tp, "missing")
	if !errors.Is(err, tape.ErrUnknownName) || core.IsFatal(err) {
		t.Errorf("expected soft ErrUnknownName, got %v", err)
	}

	_, err = core.ReadName(tp, "a-b")
	if !errors.Is(err, names.ErrInvalidCharacters) || core.IsFatal(err) {
		t.Errorf("expected soft ErrInvalidCharacters, got %v", err)
	}

	_, err = core.ReadName(tp, "9lives")
	if !errors.Is(err, names.ErrInvalidLeadingDigit) || !core.IsFatal(err) {
		t.Errorf("expected fatal ErrInvalidLeadingDigit, got %v", err)
	}
}

func TestNameFrame(t *testing.T) {
	tp := tape.New(3)

	if _, err := core.NameFrame(tp, ""); !errors.Is(err, core.ErrMissingArgument) {
		t.Errorf("expected ErrMissingArgument, got %v", err)
	}

	b, err := core.NameFrame(tp, "foo")
	if err != nil {
		t.Fatal(err)
	}
	if b.Key != "foo" || b.Entry.Kind != tape.Point || b.Entry.Index != 0 {
		t.Errorf("unexpected binding %v", b)
	}

	_ = tp.MoveForward()
	if _, err := core.NameFrame(tp, "foo"); !errors.Is(err, tape.ErrNameAlreadyBound) {
		t.Errorf("expected ErrNameAlreadyBound, got %v", err)
	}
	if e, _ := tp.Resolve("foo"); e.Index != 0 {
		t.Errorf("binding moved to %d", e.Index)
	}
}

func TestStartSegment(t *testing.T) {
	tp := tape.New(3)

	b, err := core.StartSegment(tp, false, "")
	if err != nil {
		t.Fatal(err)
	}
	if b.Entry.Kind != tape.SegmentAnchor || b.Entry.Segment != 1 {
		t.Errorf("unexpected anonymous segment %v", b)
	}

	_ = tp.MoveForward()
	b, err = core.StartSegment(tp, true, "body")
	if err != nil {
		t.Fatal(err)
	}
	if b.Key != "body" || b.Entry.Segment != 2 || b.Entry.Index != 1 {
		t.Errorf("unexpected named segment %v", b)
	}

	if _, err := core.StartSegment(tp, true, ""); !errors.Is(err, core.ErrMissingArgument) {
		t.Errorf("expected ErrMissingArgument, got %v", err)
	}
	if tp.NS() != 3 {
		t.Errorf("every segment instruction counts, expected 3, got %d", tp.NS())
	}

	_, err = core.StartSegment(tp, true, "1x")
	if !core.IsFatal(err) || !errors.Is(err, names.ErrInvalidLeadingDigit) {
		t.Errorf("expected fatal ErrInvalidLeadingDigit, got %v", err)
	}
	if tp.IsBound("1x") {
		t.Error("invalid segment name was bound")
	}
	if tp.NS() != 4 {
		t.Errorf("rejected segment still counts, expected 4, got %d", tp.NS())
	}
}

func TestNamingAtCapacityMarker(t *testing.T) {
	tp := tape.New(1)
	_ = tp.MoveForward()

	if _, err := core.NameFrame(tp, "edge"); !errors.Is(err, tape.ErrCapacityExceeded) || core.IsFatal(err) {
		t.Errorf("expected soft ErrCapacityExceeded, got %v", err)
	}
	if _, err := core.StartSegment(tp, true, "tail"); !errors.Is(err, tape.ErrCapacityExceeded) || core.IsFatal(err) {
		t.Errorf("expected soft ErrCapacityExceeded for a named segment, got %v", err)
	}
	if names := tp.Names(); len(names) != 0 {
		t.Errorf("names bound at the capacity marker: %v", names)
	}
	if tp.NS() != 1 {
		t.Errorf("expected the segment to be counted, got ns=%d", tp.NS())
	}
}

func TestWriteMissingPayload(t *testing.T) {
	tp := tape.New(1)
	if err := core.Write(tp, ""); !errors.Is(err, core.ErrMissingArgument) {
		t.Errorf("expected ErrMissingArgument, got %v", err)
	}
}
