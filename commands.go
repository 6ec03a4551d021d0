package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mrdg/groove/cue"
)

type command struct {
	name    string
	usage   string
	minArgs int
	run     func(s *session, out io.Writer, args []cue.Node) error
}

var commands = []command{
	{"show", "show", 0, showCmd},
	{"add", "add <preset> [name]", 1, addCmd},
	{"pattern", "pattern <track> <steps>", 2, patternCmd},
	{"mute", "mute <track>...", 1, muteCmd},
	{"gain", "gain <track> <db>", 2, gainCmd},
	{"level", "level <db>", 1, levelCmd},
	{"export", "export <file> <bars>", 2, exportCmd},
	{"help", "help", 0, helpCmd},
	{"exit", "exit", 0, exitCmd},
}

func showCmd(s *session, out io.Writer, args []cue.Node) error {
	s.mu.Lock()
	view := s.view()
	s.mu.Unlock()
	renderView(out, view)
	return nil
}

func addCmd(s *session, out io.Writer, args []cue.Node) error {
	var preset string
	if err := readArgs(args[:1], &preset); err != nil {
		return err
	}
	name := preset
	if len(args) > 1 {
		if err := readArgs(args[1:], &name); err != nil {
			return err
		}
	}
	return s.update(func() error {
		_, err := s.addTrack(name, preset)
		if err == nil {
			fmt.Fprintf(out, "added %s (%s), set a pattern of %d steps to hear it\n",
				name, preset, s.seq.TotalSteps())
		}
		return err
	})
}

func patternCmd(s *session, out io.Writer, args []cue.Node) error {
	var name, pattern string
	if err := readArgs(args, &name, &pattern); err != nil {
		return err
	}
	return s.update(func() error {
		t := s.findTrack(name)
		if t == nil {
			return fmt.Errorf("unknown track: %s", name)
		}
		return t.channel.SetPattern(pattern)
	})
}

func muteCmd(s *session, out io.Writer, args []cue.Node) error {
	for n := range args {
		var name string
		if err := readArgs(args[n:n+1], &name); err != nil {
			return err
		}
		if err := s.controls.ToggleMute(name); err != nil {
			return err
		}
	}
	return nil
}

func gainCmd(s *session, out io.Writer, args []cue.Node) error {
	var name string
	var db float64
	if err := readArgs(args, &name, &db); err != nil {
		return err
	}
	return s.controls.SetGain(name, db)
}

func levelCmd(s *session, out io.Writer, args []cue.Node) error {
	var db float64
	if err := readArgs(args, &db); err != nil {
		return err
	}
	return s.controls.SetLevel(db)
}

func exportCmd(s *session, out io.Writer, args []cue.Node) error {
	var file string
	var bars int
	if err := readArgs(args, &file, &bars); err != nil {
		return err
	}
	if err := bounce(s, file, bars); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %d bar(s) to %s\n", bars, file)
	return nil
}

func helpCmd(s *session, out io.Writer, args []cue.Node) error {
	for _, cmd := range commands {
		fmt.Fprintln(out, cmd.usage)
	}
	return nil
}

func exitCmd(s *session, out io.Writer, args []cue.Node) error {
	return errQuit
}

// readArgs copies parsed command arguments into the given destinations,
// converting where the types allow it.
func readArgs(args []cue.Node, slots ...interface{}) error {
	if len(args) != len(slots) {
		return errors.New("wrong number of arguments")
	}
	for n, arg := range args {
		switch p := slots[n].(type) {
		case *string:
			s, ok := arg.(cue.Identifier)
			if !ok {
				return fmt.Errorf("argument %d: expected a name", n+1)
			}
			*p = string(s)
		case *float64:
			switch v := arg.(type) {
			case cue.Float:
				*p = float64(v)
			case cue.Int:
				*p = float64(v)
			default:
				return fmt.Errorf("argument %d: expected a number", n+1)
			}
		case *int:
			v, ok := arg.(cue.Int)
			if !ok {
				return fmt.Errorf("argument %d: expected an integer", n+1)
			}
			*p = int(v)
		default:
			panic(fmt.Sprintf("readArgs: unhandled destination type: %T", p))
		}
	}
	return nil
}
