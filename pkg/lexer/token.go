package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type   TokenType // Type of the token
	Lexeme string    // Actual text of the token
	Pos    Position  // Position in the program
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, pos Position) Token {
	return Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Pos:    pos,
	}
}

const (
	NONE TokenCategory = iota
	MOVE
	FRAME
	SEGMENT_OP
	RESERVED
	DIAGNOSTIC
)

const (
	EOF TokenType = iota // End of line

	INC     // +
	DEC     // -
	WRITE   // .w
	READ    // .r
	NAME    // .n
	SEGMENT // .s
	DELETE  // .d
	MERGE   // .m
	CUT     // .c
	PASTE   // .p
	INSPECT // .i

	WORD // anything else: arguments, payload, ignored text
)

var Opcodes = map[string]TokenType{
	"+":  INC,
	"-":  DEC,
	".w": WRITE,
	".r": READ,
	".n": NAME,
	".s": SEGMENT,
	".d": DELETE,
	".m": MERGE,
	".c": CUT,
	".p": PASTE,
	".i": INSPECT,
}

var opcodeText = map[TokenType]string{
	INC:     "+",
	DEC:     "-",
	WRITE:   ".w",
	READ:    ".r",
	NAME:    ".n",
	SEGMENT: ".s",
	DELETE:  ".d",
	MERGE:   ".m",
	CUT:     ".c",
	PASTE:   ".p",
	INSPECT: ".i",
	WORD:    "word",
	EOF:     "$",
}

// String returns a string representation of the Token
func (t Token) String() string {
	return fmt.Sprintf("T_{%s, %q, %s}", t.Type, t.Lexeme, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := opcodeText[t]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch t {
	case INC, DEC:
		return MOVE
	case WRITE, READ, NAME:
		return FRAME
	case SEGMENT:
		return SEGMENT_OP
	case DELETE, MERGE, CUT, PASTE:
		return RESERVED
	case INSPECT:
		return DIAGNOSTIC
	default:
		return NONE
	}
}

// IsOpcode reports whether the token type is a recognized instruction
func (t TokenType) IsOpcode() bool {
	return t.GetCategory() != NONE
}

// LookupOpcode returns the TokenType of word if it is an opcode, WORD otherwise
func LookupOpcode(word string) TokenType {
	if tokenType, ok := Opcodes[word]; ok {
		return tokenType
	}
	return WORD
}
