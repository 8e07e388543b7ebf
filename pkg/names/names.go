// Package names checks the syntax of frame and segment identifiers.
package names

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

type Validity int

const (
	Valid Validity = iota
	InvalidLeadingDigit
	InvalidCharacters
)

// String returns a string representation of the Validity
func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case InvalidLeadingDigit:
		return "invalid leading digit"
	case InvalidCharacters:
		return "invalid characters"
	default:
		return "unknown"
	}
}

// Err maps a rejection to its sentinel error, or nil for Valid.
func (v Validity) Err() error {
	switch v {
	case InvalidLeadingDigit:
		return ErrInvalidLeadingDigit
	case InvalidCharacters:
		return ErrInvalidCharacters
	default:
		return nil
	}
}

// Validate classifies token as a name: letters and digits only, not starting with a digit.
// Character content is checked first, so "1-a" is InvalidCharacters.
// Digits are Unicode decimal digits (category Nd).
func Validate(token string) Validity {
	if token == "" {
		return InvalidCharacters
	}

	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return InvalidCharacters
		}
	}

	first, _ := utf8.DecodeRuneInString(token)
	if unicode.IsDigit(first) {
		return InvalidLeadingDigit
	}

	return Valid
}

var (
	ErrInvalidLeadingDigit = errors.New("name begins with digit")
	ErrInvalidCharacters   = errors.New("name must be alphanumeric")
)
