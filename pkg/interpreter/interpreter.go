package interpreter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"tapebox/pkg/core"
	"tapebox/pkg/lexer"
	"tapebox/pkg/tape"

	"github.com/charmbracelet/log"
)

// Interpreter feeds program lines through the tokenizer and dispatches every opcode against one tape
type Interpreter struct {
	tape *tape.Tape // machine state, owned for the whole session

	out    io.Writer    // output writer for reads, reports and soft errors
	logger *slog.Logger // debug trace of dispatched opcodes

	// Exec hook (implemented in step.go, replaceable via SetExecStep)
	execStep func(*Interpreter, lexer.Instruction) error

	maxSteps int // maximum steps (0 = unlimited)
	steps    int // steps executed

	diagnostics []error    // soft errors reported so far
	lastRead    tape.Value // last value displayed by a read
	hasRead     bool
}

type Option func(*Interpreter)

// WithWriter sets the output writer for reads, reports and soft errors
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithLogger sets the logger used to trace dispatch
func WithLogger(l *slog.Logger) Option {
	return func(i *Interpreter) { i.logger = l }
}

// WithMaxSteps sets a maximum number of dispatched opcodes before returning ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// NewInterpreter creates a new Interpreter instance over t
func NewInterpreter(t *tape.Tape, opts ...Option) *Interpreter {
	it := &Interpreter{
		tape:     t,
		out:      nil, // caller should set, or use WithWriter
		maxSteps: 0,   // 0 => unlimited
	}

	for _, o := range opts {
		o(it)
	}

	if it.out == nil {
		it.out = os.Stdout
	}

	if it.logger == nil {
		it.logger = slog.New(log.Default())
	}

	if it.execStep == nil {
		it.execStep = coreStep
	}

	return it
}

// Tape returns the machine state
func (i *Interpreter) Tape() *tape.Tape {
	return i.tape
}

// Output returns the output writer
func (i *Interpreter) Output() io.Writer {
	return i.out
}

// SetExecStep installs the step function; nil restores coreStep
func (i *Interpreter) SetExecStep(fn func(*Interpreter, lexer.Instruction) error) {
	if fn == nil {
		fn = coreStep
	}
	i.execStep = fn
}

// ExecLine runs one line of program text to completion.
// Soft errors are reported and execution continues; only fatal errors are returned.
func (i *Interpreter) ExecLine(line string) error {
	n := i.tape.NextLine()
	lx := lexer.NewLexer(line, n)

	for {
		ins, ok := lx.Next()
		if !ok {
			return nil
		}

		if err := i.Step(ins); err != nil {
			return err
		}
	}
}

// Run executes lines in order and stops at the first fatal error
func (i *Interpreter) Run(lines []string) error {
	for _, line := range lines {
		if err := i.ExecLine(line); err != nil {
			return err
		}
	}
	return nil
}

// Step dispatches a single instruction.
// The instruction counter moves before execution, so failing opcodes are counted too.
func (i *Interpreter) Step(ins lexer.Instruction) error {
	if i.maxSteps > 0 && i.steps >= i.maxSteps {
		return ErrMaxStepsExceeded
	}

	i.tape.Tick()
	i.logger.Debug("dispatch",
		"op", ins.Op.Type.String(),
		"args", ins.Payload(),
		"ic", i.tape.IC(),
		"fp", i.tape.FP(),
		"line", ins.Op.Pos.Line)

	err := i.execStep(i, ins)
	i.steps++

	if err == nil {
		return nil
	}

	if core.IsFatal(err) {
		return fmt.Errorf("line %d, token %d (%s): %w", ins.Op.Pos.Line, ins.Op.Pos.Column, ins.Op.Type, err)
	}

	i.report(ins, err)
	return nil
}

// Diagnostics returns a copy of every soft error reported so far
func (i *Interpreter) Diagnostics() []error {
	return append([]error(nil), i.diagnostics...)
}

// LastRead returns the value displayed by the most recent read
func (i *Interpreter) LastRead() (tape.Value, bool) {
	return i.lastRead, i.hasRead
}

// display writes a read value to the output
func (i *Interpreter) display(v tape.Value) {
	i.lastRead = v
	i.hasRead = true
	fmt.Fprintln(i.out, v.String())
}

var ErrMaxStepsExceeded = errors.New("maximum steps exceeded")
