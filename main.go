package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/mrdg/groove/audio"
)

const (
	sampleRate = 44100
	bufferSize = 512
	nChannels  = 2
)

// defaultKit is the groove loaded at startup, sized for the default 4x4 bar.
var defaultKit = []struct {
	name, preset, pattern string
}{
	{"kick", "kick", "X...X...X..X.X.."},
	{"snare", "snare", "..X...X...X...X."},
	{"hihat", "hihat", "X.X.X.X.X.X.X.XX"},
	{"bell", "bell", "X...........X..."},
}

func main() {
	var (
		bpm      = flag.Float64("bpm", 120, "tempo in beats per minute")
		beats    = flag.Int("beats", 4, "beats per bar")
		subBeats = flag.Int("subbeats", 4, "subdivisions per beat")
	)
	flag.Parse()

	s, err := newSession(*bpm, *beats, *subBeats)
	if err != nil {
		log.Fatal(err)
	}

	if err := portaudio.Initialize(); err != nil {
		log.Fatal(err)
	}
	defer portaudio.Terminate()

	stream, err := portaudio.OpenDefaultStream(0, nChannels, sampleRate, bufferSize, s.process)
	if err != nil {
		log.Fatal(err)
	}
	s.stream = stream

	if err := stream.Start(); err != nil {
		log.Fatal(err)
	}
	defer stream.Close()

	if err := repl(s, os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// track ties a named sequencer channel to the preset that built its
// instrument, so offline bounces can rebuild the whole setup from scratch.
type track struct {
	name    string
	preset  string
	channel *audio.Channel
}

type session struct {
	stream *portaudio.Stream

	// mu guards the sequencer and track list against REPL edits while
	// the audio callback reads them. Gain, mute and level changes go
	// through controls without the lock.
	mu       sync.Mutex
	seq      *audio.Sequencer
	tracks   []*track
	controls *audio.Controls

	tempo    float64
	beats    int
	subBeats int

	clock  float64        // audio time in seconds, advanced by the callback
	active [][]audio.Note // live notes per track
	hold   float64        // how long a sequenced note is held before release
	sum    []float64      // mono mix buffer, reused every callback
}

func newSession(tempo float64, beats, subBeats int) (*session, error) {
	seq, err := audio.NewSequencer(tempo, beats, subBeats)
	if err != nil {
		return nil, err
	}
	s := &session{
		seq:      seq,
		controls: audio.NewControls(),
		tempo:    tempo,
		beats:    beats,
		subBeats: subBeats,
		hold:     seq.StepDuration(),
		sum:      make([]float64, bufferSize),
	}
	for _, t := range defaultKit {
		tr, err := s.addTrack(t.name, t.preset)
		if err != nil {
			return nil, err
		}
		if err := tr.channel.SetPattern(t.pattern); err != nil {
			// The default patterns only fit the default bar; in other
			// meters the kit starts silent.
			log.Printf("skipping default pattern for %s: %v", t.name, err)
		}
	}
	return s, nil
}

func (s *session) addTrack(name, preset string) (*track, error) {
	newInstrument, ok := audio.Presets[preset]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s", preset)
	}
	if s.findTrack(name) != nil {
		return nil, fmt.Errorf("track already exists: %s", name)
	}
	if err := s.controls.AddChannel(name); err != nil {
		return nil, err
	}
	t := &track{
		name:    name,
		preset:  preset,
		channel: s.seq.AddInstrument(newInstrument()),
	}
	s.tracks = append(s.tracks, t)
	s.active = append(s.active, nil)
	return t, nil
}

func (s *session) findTrack(name string) *track {
	for _, t := range s.tracks {
		if t.name == name {
			return t
		}
	}
	return nil
}

func (s *session) update(f func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f()
}
