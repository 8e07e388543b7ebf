package lexer

import "fmt"

type Position struct {
	Line   int // program line, starting at 1
	Column int // token index within the line, starting at 1
	Offset int // byte offset of the token within the line
}

// Returns a string representation of the Position
func (p Position) String() string {
	return fmt.Sprintf("%d, %d, %d", p.Line, p.Column, p.Offset)
}

// Creates a new Position instance
func NewPosition(line, column, offset int) Position {
	return Position{
		Line:   line,
		Column: column,
		Offset: offset,
	}
}
