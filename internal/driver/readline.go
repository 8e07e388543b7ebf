package driver

import (
	"errors"

	"github.com/chzyer/readline"
)

var ErrInterrupted = errors.New("interrupted")

// lineEditor is the part of *readline.Instance a ReadlineSource drives
type lineEditor interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

// ReadlineSource reads interactive lines from the terminal with history.
type ReadlineSource struct {
	rl lineEditor
}

// NewReadlineSource opens the terminal prompt; an empty historyFile keeps history in memory only.
func NewReadlineSource(historyFile string) (*ReadlineSource, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      Prompt(0),
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineSource{rl: rl}, nil
}

func (s *ReadlineSource) ReadLine(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)
	line, err := s.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

func (s *ReadlineSource) Close() error {
	return s.rl.Close()
}
