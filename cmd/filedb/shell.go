package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vinicius-lino-figueiredo/filedb"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/storage"
	"github.com/vinicius-lino-figueiredo/filedb/domain"
)

const prompt = "filedb> "

// connection is the database the shell is working on.
type connection struct {
	name string
	path string
}

// Shell reads commands from a [Prompter] and runs them against an engine.
// It keeps track of a single connected database, dropped as soon as its file
// disappears.
type Shell struct {
	engine   *filedb.Engine
	config   domain.ConfigStore
	storage  domain.Storage
	prompter Prompter
	out      io.Writer
	conn     *connection
}

// NewShell returns a shell writing its output to out.
func NewShell(engine *filedb.Engine, config domain.ConfigStore, prompter Prompter, out io.Writer) *Shell {
	return &Shell{
		engine:   engine,
		config:   config,
		storage:  storage.NewStorage(),
		prompter: prompter,
		out:      out,
	}
}

// Run reads and executes commands until /q is given or input ends.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "filedb %s. Type /help to list commands.\n", version)
	for {
		line, err := s.prompter.Prompt(s.label())
		if errors.Is(err, errCanceled) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := s.Execute(ctx, line)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errCanceled):
			fmt.Fprintln(s.out, "Canceled.")
		case err != nil:
			return err
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line and reports whether the shell should
// stop. Only input errors are returned; failed operations are printed. The
// connected database is checked after every command.
func (s *Shell) Execute(ctx context.Context, line string) (quit bool, err error) {
	defer s.refresh()

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false, nil
	}
	cmd, args, ok := lookup(tokens)
	if !ok {
		fmt.Fprintf(s.out, "Error: unknown command %q, type /help to list commands\n", strings.Join(tokens, " "))
		return false, nil
	}
	if len(args) != len(cmd.args) {
		fmt.Fprintf(s.out, "Error: usage: %s\n", cmd.usage())
		return false, nil
	}
	if cmd.needsDB && s.conn == nil {
		fmt.Fprintln(s.out, "Error: not connected to a database, use /connect db name first")
		return false, nil
	}
	if cmd.quit {
		return true, nil
	}
	return false, cmd.run(s, ctx, args)
}

// refresh disconnects from the current database if its file is gone.
func (s *Shell) refresh() {
	if s.conn == nil {
		return
	}
	ok, err := s.storage.IsFile(s.conn.path)
	if err != nil || ok {
		return
	}
	fmt.Fprintf(s.out, "Disconnected from database %q.\n", s.conn.name)
	s.conn = nil
}

func (s *Shell) label() string {
	if s.conn == nil {
		return prompt
	}
	return "filedb:" + s.conn.name + "> "
}

func (s *Shell) ask(label string) (string, error) {
	return s.prompter.Prompt(label + ": ")
}

// confirm only accepts a literal Y.
func (s *Shell) confirm(question string) (bool, error) {
	answer, err := s.prompter.Prompt(question + " Type Y to confirm: ")
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(answer) != "Y" {
		fmt.Fprintln(s.out, "Canceled.")
		return false, nil
	}
	return true, nil
}

func (s *Shell) printErr(err error) {
	fmt.Fprintf(s.out, "Error: %s\n", err)
}

// report prints the failure and logging outcome of r, and tells whether the
// operation succeeded.
func report[T any](s *Shell, r filedb.Response[T]) bool {
	if !r.Success {
		s.printErr(r.Error)
	}
	if r.LogError != nil {
		fmt.Fprintf(s.out, "Warning: could not write log: %s\n", r.LogError)
	}
	return r.Success
}
