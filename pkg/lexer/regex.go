package lexer

import (
	"errors"
	"math"
	"regexp"
	"unicode"
)

// \p{Nd} is the class unicode.IsDigit tests, so an index and a name's leading digit agree
var indexRegex = regexp.MustCompile(`^\p{Nd}+$`)

// IsIndex reports whether a lexeme addresses a frame by number
func IsIndex(lexeme string) bool {
	return indexRegex.MatchString(lexeme)
}

// IndexValue returns the frame number an index lexeme spells, in any decimal script
func IndexValue(lexeme string) (int, error) {
	if !IsIndex(lexeme) {
		return 0, ErrNotIndex
	}

	n := 0
	for _, r := range lexeme {
		d := digitValue(r)
		if n > (math.MaxInt-d)/10 {
			return 0, ErrIndexTooLarge
		}
		n = n*10 + d
	}
	return n, nil
}

// digitValue maps a decimal digit to 0-9.
// Every run of decimal digits starts at its zero, so the offset into the range is the value.
func digitValue(r rune) int {
	for _, rg := range unicode.Nd.R16 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10
		}
	}
	return 0
}

var (
	ErrNotIndex      = errors.New("not a frame index")
	ErrIndexTooLarge = errors.New("frame index too large")
)
