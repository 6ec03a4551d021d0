package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mrdg/groove/cue"
)

// errQuit makes the exit command unwind the loop without printing anything.
var errQuit = errors.New("quit")

func repl(s *session, out io.Writer) error {
	rl, err := readline.New("groove> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := eval(s, out, line); err != nil {
			if err == errQuit {
				return nil
			}
			fmt.Fprintln(out, err)
		}
	}
}

func eval(s *session, out io.Writer, line string) error {
	command, err := cue.Parse(line)
	if err != nil {
		return err
	}
	name := string(command.Name)
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}
		if len(command.Args) < cmd.minArgs {
			return fmt.Errorf("%s: not enough arguments, usage: %s", cmd.name, cmd.usage)
		}
		if err := cmd.run(s, out, command.Args); err != nil {
			if err == errQuit {
				return err
			}
			return fmt.Errorf("%s: %w", cmd.name, err)
		}
		return nil
	}
	return fmt.Errorf("unknown command: %s", name)
}
