package interpreter

import (
	"fmt"

	"tapebox/pkg/color"
	"tapebox/pkg/core"
	"tapebox/pkg/lexer"
	"tapebox/pkg/tape"
)

// acknowledgements for opcodes that are reserved but do nothing yet
var reserved = map[lexer.TokenType]string{
	lexer.DELETE: "Delete",
	lexer.MERGE:  "Merge",
	lexer.CUT:    "Cut",
	lexer.PASTE:  "Paste",
}

// coreStep is the main single-instruction execution function
func coreStep(i *Interpreter, ins lexer.Instruction) error {
	t := i.tape

	switch ins.Op.Type {
	case lexer.INC:
		return core.Inc(t)

	case lexer.DEC:
		return core.Dec(t)

	case lexer.WRITE:
		return core.Write(t, ins.Payload())

	case lexer.READ:
		v, err := read(t, ins)
		if err != nil {
			return err
		}
		i.display(v)
		return nil

	case lexer.NAME:
		arg, _ := ins.Arg(0)
		b, err := core.NameFrame(t, arg.Lexeme)
		if err != nil {
			return err
		}
		i.logger.Debug("bound name", "name", b.Key, "frame", b.Entry.Index)
		return nil

	case lexer.SEGMENT:
		// Args is [.n] or [.n name] when the segment is named
		_, named := ins.Arg(0)
		arg, _ := ins.Arg(1)
		b, err := core.StartSegment(t, named, arg.Lexeme)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, color.CyanText(b.String()))
		return nil

	case lexer.DELETE, lexer.MERGE, lexer.CUT, lexer.PASTE:
		fmt.Fprintln(i.out, reserved[ins.Op.Type])
		return nil

	case lexer.INSPECT:
		fmt.Fprint(i.out, t.String())
		return nil

	default:
		// the lexer only yields opcodes; anything else is ignored
		return nil
	}
}

// read picks the read form: current frame, frame index or name
func read(t *tape.Tape, ins lexer.Instruction) (tape.Value, error) {
	arg, ok := ins.Arg(0)
	if !ok {
		return core.ReadCurrent(t)
	}

	if lexer.IsIndex(arg.Lexeme) {
		return core.ReadIndex(t, arg.Lexeme)
	}

	return core.ReadName(t, arg.Lexeme)
}
