package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tapebox/internal/config"
	"tapebox/internal/logger"
	"tapebox/pkg/color"
	"tapebox/pkg/interpreter"
	"tapebox/pkg/tape"

	"github.com/charmbracelet/log"
)

// Quit is the line that ends an interactive session.
const Quit = "q"

type Driver struct {
	Help       bool   // Show help message
	Verbose    bool   // Enable debug logs and the final tape report
	NoColor    bool   // Disable colored output
	TapeSize   int    // Number of frames, 0 keeps the configured size
	ConfigFile string // Path to a CUE config file
	TraceFile  string // Path to a JSON trace of dispatched opcodes
	SourceFile string // Path to the program, empty for interactive mode

	Out io.Writer // Output for reads, reports and soft errors, stdout if nil
}

// Run loads the configuration, builds a machine and runs the program file or an interactive session.
func (opts *Driver) Run() error {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.TapeSize > 0 {
		cfg.TapeSize = opts.TapeSize
	}
	if opts.NoColor || cfg.NoColor {
		color.EnableColor(false)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	var trace io.Writer
	if opts.TraceFile != "" {
		f, err := os.Create(opts.TraceFile)
		if err != nil {
			return fmt.Errorf("creating trace file: %w", err)
		}
		defer f.Close()
		trace = f
	}

	it := interpreter.NewInterpreter(
		tape.New(cfg.TapeSize),
		interpreter.WithWriter(out),
		interpreter.WithLogger(logger.New(trace)),
	)

	log.Info("Starting session", "size", cfg.TapeSize, "file", opts.SourceFile)

	if opts.SourceFile == "" {
		src, err := NewReadlineSource(cfg.HistoryFile)
		if err != nil {
			return fmt.Errorf("starting prompt: %w", err)
		}
		defer src.Close()
		return RunInteractive(it, src)
	}

	lines, err := LoadProgram(opts.SourceFile)
	if err != nil {
		return err
	}

	err = RunBatch(it, lines)

	if opts.Verbose {
		fmt.Fprintln(out, color.GreenText("\n=== Final Tape ==="))
		fmt.Fprint(out, it.Tape().String())
	}

	return err
}

// LoadProgram reads a program file as a sequence of lines.
func LoadProgram(path string) ([]string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	lines := strings.Split(string(src), "\n")
	for n, line := range lines {
		lines[n] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// RunBatch feeds every line to the machine, in order, without echo.
func RunBatch(it *interpreter.Interpreter, lines []string) error {
	if err := it.Run(lines); err != nil {
		return fmt.Errorf("execution halted: %w", err)
	}
	log.Info("Program finished", "ic", it.Tape().IC(), "fp", it.Tape().FP())
	return nil
}

// LineSource hands out one line of program text per call.
// It returns io.EOF when no more lines will come.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

// Prompt renders the interactive prompt for the current frame pointer.
func Prompt(fp int) string {
	return fmt.Sprintf("frame %d :", fp)
}

// RunInteractive requests lines from src until the quit line, the end of input or a fatal error.
func RunInteractive(it *interpreter.Interpreter, src LineSource) error {
	for {
		line, err := src.ReadLine(Prompt(it.Tape().FP()))
		if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) {
			log.Info("Input closed", "ic", it.Tape().IC())
			return nil
		}
		if err != nil {
			return err
		}

		if line == Quit {
			fmt.Fprintln(it.Output(), "exiting...")
			return nil
		}

		if err := it.ExecLine(line); err != nil {
			return fmt.Errorf("execution halted: %w", err)
		}
	}
}
