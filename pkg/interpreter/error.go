package interpreter

import (
	"errors"
	"fmt"

	"tapebox/pkg/color"
	"tapebox/pkg/core"
	"tapebox/pkg/lexer"
)

// Diagnostic is a soft error tied to the opcode that produced it
type Diagnostic struct {
	Op  lexer.Token
	Err error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %v at Line: %d, Token %d", d.Op.Type, d.Err, d.Op.Pos.Line, d.Op.Pos.Column)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// report records a soft error and writes it to the output
func (i *Interpreter) report(ins lexer.Instruction, err error) {
	i.diagnostics = append(i.diagnostics, Diagnostic{Op: ins.Op, Err: err})

	pos := ins.Op.Pos
	msg := fmt.Sprintf("%s: %v", ins.Op.Type, err)

	// missing arguments are warnings
	if errors.Is(err, core.ErrMissingArgument) {
		fmt.Fprintln(i.out, color.Warning(color.YellowText(msg)+" at "+color.Position(pos.Line, pos.Column)))
	} else {
		fmt.Fprintln(i.out, color.Error(color.RedText(msg)+" at "+color.Position(pos.Line, pos.Column)))
	}

	i.logger.Debug("soft error", "op", ins.Op.Type.String(), "error", err, "ic", i.tape.IC())
}
