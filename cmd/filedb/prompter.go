package main

import (
	"errors"

	"github.com/chzyer/readline"
)

// errCanceled is returned by a [Prompter] when the user interrupts the input
// of a command.
var errCanceled = errors.New("canceled")

// Prompter reads one line of user input after showing a label. It returns
// [io.EOF] when there is no more input and errCanceled when the user gives up
// on the current command.
type Prompter interface {
	Prompt(label string) (string, error)
}

type readlinePrompter struct {
	rl *readline.Instance
}

// Prompt implements [Prompter].
func (p *readlinePrompter) Prompt(label string) (string, error) {
	p.rl.SetPrompt(label)
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", errCanceled
	}
	return line, err
}
