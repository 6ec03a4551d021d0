package main

import (
	"fmt"
	"io"
	"strings"
)

// sessionView is a snapshot of what the grid shows, copied out under the
// session lock so rendering happens without it.
type sessionView struct {
	beats    int
	subBeats int
	step     int
	tracks   []trackView
}

type trackView struct {
	name    string
	muted   bool
	pattern string
}

// view must be called with s.mu held.
func (s *session) view() sessionView {
	v := sessionView{
		beats:    s.beats,
		subBeats: s.subBeats,
		step:     s.seq.Step(),
	}
	for _, t := range s.tracks {
		v.tracks = append(v.tracks, trackView{
			name:    t.name,
			muted:   s.controls.Muted(t.name),
			pattern: t.channel.Pattern(),
		})
	}
	return v
}

func renderView(w io.Writer, v sessionView) {
	var maxNameLen int
	for _, t := range v.tracks {
		if len(t.name) > maxNameLen {
			maxNameLen = len(t.name)
		}
	}

	// Beat numbers above the first step of each beat.
	const spacePerStep = 2
	var header strings.Builder
	header.WriteString(strings.Repeat(" ", maxNameLen+4))
	for b := 1; b <= v.beats; b++ {
		header.WriteString(fmt.Sprintf("%-*d", v.subBeats*spacePerStep, b))
	}
	fmt.Fprintln(w, colorize(header.String(), colorMagenta))

	for _, t := range v.tracks {
		mark := " "
		if t.muted {
			mark = "M"
		}
		var steps strings.Builder
		if t.pattern == "" {
			steps.WriteString("(no pattern)")
		} else {
			for i := 0; i < len(t.pattern); i++ {
				if t.pattern[i] == 'X' {
					steps.WriteString("X ")
				} else {
					steps.WriteString("· ")
				}
			}
		}
		name := colorize(fmt.Sprintf("%-*s", maxNameLen, t.name), colorBlue)
		fmt.Fprintf(w, "%s %s  %s\n", name, mark, steps.String())
	}
}

const (
	colorBlack = iota + 30
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
)

func colorize(text string, color int) string {
	return fmt.Sprintf("\033[%dm%s\033[0m", color, text)
}
