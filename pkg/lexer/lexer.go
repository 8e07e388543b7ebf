package lexer

import "strings"

// Separator splits a program line into tokens. There is no quoting or escaping.
const Separator = " "

// Instruction is one opcode together with the argument tokens it consumed.
type Instruction struct {
	Op       Token   // opcode token
	Args     []Token // tokens consumed after the opcode
	Consumed int     // 1 + len(Args)
}

// Arg returns the n-th argument token, if present
func (i Instruction) Arg(n int) (Token, bool) {
	if n < 0 || n >= len(i.Args) {
		return Token{}, false
	}
	return i.Args[n], true
}

// Payload joins the argument lexemes back with the separator
func (i Instruction) Payload() string {
	parts := make([]string, len(i.Args))
	for n, a := range i.Args {
		parts[n] = a.Lexeme
	}
	return strings.Join(parts, Separator)
}

type Lexer struct {
	tokens []Token // every token of the line, opcode or not
	cursor int     // index of the next token to look at
}

// NewLexer tokenizes one program line. line is its 1-based number, used for positions.
func NewLexer(input string, line int) *Lexer {
	words := strings.Split(input, Separator)
	tokens := make([]Token, 0, len(words))

	offset := 0
	for n, w := range words {
		tokens = append(tokens, NewToken(LookupOpcode(w), w, NewPosition(line, n+1, offset)))
		offset += len(w) + len(Separator)
	}

	// an empty line has no tokens at all
	if input == "" {
		tokens = tokens[:0]
	}

	return &Lexer{tokens: tokens}
}

// Next returns the next instruction of the line and moves the cursor past everything it consumed.
// Tokens that are not opcodes are skipped. It reports false once the line is exhausted.
func (l *Lexer) Next() (Instruction, bool) {
	for l.cursor < len(l.tokens) {
		tok := l.tokens[l.cursor]
		if !tok.Type.IsOpcode() {
			l.cursor++
			continue
		}

		ins := Instruction{Op: tok}

		switch tok.Type {
		case WRITE:
			// the rest of the line is the value, opcodes included
			ins.Args = append(ins.Args, l.tokens[l.cursor+1:]...)

		case READ, NAME:
			if arg, ok := l.argumentAt(l.cursor + 1); ok {
				ins.Args = append(ins.Args, arg)
			}

		case SEGMENT:
			// .s .n name
			if next, ok := l.tokenAt(l.cursor + 1); ok && next.Type == NAME {
				ins.Args = append(ins.Args, next)
				if arg, ok := l.argumentAt(l.cursor + 2); ok {
					ins.Args = append(ins.Args, arg)
				}
			}
		}

		ins.Consumed = 1 + len(ins.Args)
		l.cursor += ins.Consumed

		return ins, true
	}

	return Instruction{}, false
}

// All drains the lexer
func (l *Lexer) All() []Instruction {
	var out []Instruction
	for {
		ins, ok := l.Next()
		if !ok {
			return out
		}
		out = append(out, ins)
	}
}

// HasMore checks if there are tokens left to look at
func (l *Lexer) HasMore() bool {
	return l.cursor < len(l.tokens)
}

func (l *Lexer) tokenAt(n int) (Token, bool) {
	if n >= len(l.tokens) {
		return Token{}, false
	}
	return l.tokens[n], true
}

// argumentAt returns the token at n if it can serve as an argument (non-empty)
func (l *Lexer) argumentAt(n int) (Token, bool) {
	tok, ok := l.tokenAt(n)
	if !ok || tok.Lexeme == "" {
		return Token{}, false
	}
	return tok, true
}
