package driver_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tapebox/internal/driver"
	"tapebox/pkg/color"
	"tapebox/pkg/core"
	"tapebox/pkg/interpreter"
	"tapebox/pkg/tape"
)

func TestMain(m *testing.M) {
	color.EnableColor(false)
	os.Exit(m.Run())
}

// scripted is a LineSource replaying fixed lines and recording the prompts it was shown
type scripted struct {
	lines   []string
	prompts []string
}

func (s *scripted) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func newMachine(size int) (*interpreter.Interpreter, *bytes.Buffer) {
	out := new(bytes.Buffer)
	it := interpreter.NewInterpreter(tape.New(size),
		interpreter.WithWriter(out),
		interpreter.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return it, out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInteractiveQuit(t *testing.T) {
	it, out := newMachine(4)
	src := &scripted{lines: []string{"+", "+ .w hi", "q", "+"}}

	if err := driver.RunInteractive(it, src); err != nil {
		t.Fatal(err)
	}

	if it.Tape().FP() != 2 {
		t.Errorf("expected fp 2, got %d", it.Tape().FP())
	}
	expectedPrompts := []string{"frame 0 :", "frame 1 :", "frame 2 :"}
	if strings.Join(src.prompts, "|") != strings.Join(expectedPrompts, "|") {
		t.Errorf("expected prompts %v, got %v", expectedPrompts, src.prompts)
	}
	if out.String() != "exiting...\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if len(src.lines) != 1 {
		t.Errorf("lines after quit were consumed")
	}
}

func TestInteractiveQuitIsExact(t *testing.T) {
	it, _ := newMachine(4)
	src := &scripted{lines: []string{"q +", "+"}}

	if err := driver.RunInteractive(it, src); err != nil {
		t.Fatal(err)
	}
	if it.Tape().FP() != 2 {
		t.Errorf("only an exact q should quit, fp %d", it.Tape().FP())
	}
}

func TestInteractiveFatal(t *testing.T) {
	it, _ := newMachine(3)
	src := &scripted{lines: []string{".r 5", "+"}}

	err := driver.RunInteractive(it, src)
	if !core.IsFatal(err) || !errors.Is(err, tape.ErrIndexOutOfRange) {
		t.Fatalf("expected fatal ErrIndexOutOfRange, got %v", err)
	}
	if it.Tape().FP() != 0 {
		t.Errorf("session continued after fatal error")
	}
}

func TestBatch(t *testing.T) {
	it, out := newMachine(4)

	if err := driver.RunBatch(it, []string{"+", "+", ".w hello", ".r", ""}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hello\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if it.Tape().LC() != 5 {
		t.Errorf("expected 5 lines counted, got %d", it.Tape().LC())
	}
}

func TestLoadProgram(t *testing.T) {
	path := writeFile(t, "prog.tb", "+\r\n.w a b\r\n.r\n")

	lines, err := driver.LoadProgram(path)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"+", ".w a b", ".r", ""}
	if strings.Join(lines, "|") != strings.Join(expected, "|") {
		t.Errorf("expected %q, got %q", expected, lines)
	}

	if _, err := driver.LoadProgram(filepath.Join(t.TempDir(), "absent.tb")); err == nil {
		t.Error("expected an error for a missing program")
	}
}

func TestRunFile(t *testing.T) {
	prog := writeFile(t, "prog.tb", "+ .w x\n.n mark\n.r mark\n")
	out := new(bytes.Buffer)

	d := &driver.Driver{
		Verbose:    true,
		NoColor:    true,
		TapeSize:   2,
		SourceFile: prog,
		Out:        out,
	}
	if err := d.Run(); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out.String(), "x\n") {
		t.Errorf("expected the read first, got %q", out.String())
	}
	if !strings.Contains(out.String(), "=== Final Tape ===") || !strings.Contains(out.String(), "Frames: | 0 | x\n") {
		t.Errorf("expected the final tape report, got %q", out.String())
	}
}

func TestRunFileWithConfigAndTrace(t *testing.T) {
	prog := writeFile(t, "prog.tb", "+ + +\n")
	cfg := writeFile(t, "tapebox.cue", "tape_size: 2\n")
	trace := filepath.Join(t.TempDir(), "trace.jsonl")
	out := new(bytes.Buffer)

	d := &driver.Driver{
		NoColor:    true,
		ConfigFile: cfg,
		TraceFile:  trace,
		SourceFile: prog,
		Out:        out,
	}
	if err := d.Run(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.String(), "frame pointer reached tape capacity") {
		t.Errorf("configured size not applied, output %q", out.String())
	}

	data, err := os.ReadFile(trace)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), `"msg":"dispatch"`); n != 3 {
		t.Errorf("expected 3 dispatch records, got %d in %q", n, data)
	}
}

func TestRunFileFatal(t *testing.T) {
	prog := writeFile(t, "prog.tb", ".r 9\n")

	d := &driver.Driver{
		NoColor:    true,
		TapeSize:   3,
		SourceFile: prog,
		Out:        new(bytes.Buffer),
	}
	if err := d.Run(); !core.IsFatal(err) {
		t.Fatalf("expected a fatal error, got %v", err)
	}
}
