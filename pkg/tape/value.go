package tape

import (
	"fmt"
	"strconv"
	"strings"
)

type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindInt
	KindFloat
	KindString
)

// String returns the kind name used in conversion errors.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is the content of a single frame on the tape.
type Value struct {
	Kind ValueKind
	I64  int64
	F64  float64
	Str  string
}

// Zero is the value every frame holds when the tape is created.
var Zero = NewInt(0)

// String renders the value as it appears in reads and tape reports.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return fmt.Sprintf("%g", v.F64)
	case KindString:
		return v.Str
	default:
		return "<nil>"
	}
}

// IsIntegral reports whether the value converts to an int64 without loss.
func (v Value) IsIntegral() bool {
	switch v.Kind {
	case KindInt:
		return true
	case KindString:
		_, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64)
		return err == nil
	default:
		return false
	}
}

// AsFloat64 converts the value to float64 if possible.
// Strings holding a number convert, so written payloads take part in arithmetic.
func (v Value) AsFloat64() (float64, error) {
	switch v.Kind {
	case KindFloat:
		return v.F64, nil
	case KindInt:
		return float64(v.I64), nil
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to float", v.Str)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %v to float", v.Kind)
	}
}

// AsInt64 converts the value to int64 if possible.
func (v Value) AsInt64() (int64, error) {
	switch v.Kind {
	case KindInt:
		return v.I64, nil
	case KindFloat:
		return int64(v.F64), nil
	case KindString:
		i, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to int", v.Str)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("cannot convert %v to int", v.Kind)
	}
}

// NewInt creates a new integer Value.
func NewInt(i int64) Value {
	return Value{Kind: KindInt, I64: i}
}

// NewFloat creates a new float Value.
func NewFloat(f float64) Value {
	return Value{Kind: KindFloat, F64: f}
}

// NewString creates a new string Value.
func NewString(s string) Value {
	return Value{Kind: KindString, Str: s}
}
