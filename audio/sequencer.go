package audio

import "fmt"

// DefaultNoteID is the scale degree stamped on sequencer-triggered notes.
// Channels carry no per-step pitch; what you hear comes from each preset's
// harmonic offsets around this degree.
const DefaultNoteID = 64

// TriggerMarker is the pattern character that fires a channel on a step.
// Every other character is silent.
const TriggerMarker = 'X'

// Channel pairs one instrument with a beat pattern. The instrument is shared
// and outlives the channel's notes; the channel does not own it.
type Channel struct {
	Instrument Instrument

	pattern    string
	steps      []bool
	totalSteps int
}

// SetPattern installs a beat pattern, one character per step. The pattern
// must cover the sequencer's bar exactly; a length mismatch is a
// configuration error, not something to discover step by step at runtime.
func (c *Channel) SetPattern(pattern string) error {
	if len(pattern) != c.totalSteps {
		return fmt.Errorf("pattern %q has %d steps, want %d", pattern, len(pattern), c.totalSteps)
	}
	steps := make([]bool, len(pattern))
	for i := 0; i < len(pattern); i++ {
		steps[i] = pattern[i] == TriggerMarker
	}
	c.pattern = pattern
	c.steps = steps
	return nil
}

// Pattern returns the channel's pattern string, empty if none was set yet.
func (c *Channel) Pattern() string { return c.pattern }

// Sequencer is a fixed-tempo step clock. It owns the bar grid and its
// channels; the host owns time and feeds in elapsed deltas via Update.
// Update must not be called concurrently with itself.
type Sequencer struct {
	tempo    float64
	beats    int
	subBeats int

	stepDuration float64
	totalSteps   int

	clock       float64 // seconds since the sequencer started
	accumulated float64 // elapsed time not yet consumed by a step
	step        int     // current step, wraps at totalSteps

	channels []*Channel
	batch    []Note // reused across Update calls
}

// NewSequencer builds a sequencer running at tempo beats per minute with
// beats×subBeats steps per bar. A tempo or meter that would break the step
// duration math is rejected here rather than guarded at every tick.
func NewSequencer(tempo float64, beats, subBeats int) (*Sequencer, error) {
	if tempo <= 0 {
		return nil, fmt.Errorf("tempo must be positive, got %v", tempo)
	}
	if beats <= 0 || subBeats <= 0 {
		return nil, fmt.Errorf("bad meter %d/%d: beats and sub-beats must be positive", beats, subBeats)
	}
	return &Sequencer{
		tempo:        tempo,
		beats:        beats,
		subBeats:     subBeats,
		stepDuration: (60 / tempo) / float64(subBeats),
		totalSteps:   beats * subBeats,
	}, nil
}

// AddInstrument registers a channel for inst. The channel starts without a
// pattern and stays silent until SetPattern succeeds.
func (s *Sequencer) AddInstrument(inst Instrument) *Channel {
	c := &Channel{Instrument: inst, totalSteps: s.totalSteps}
	s.channels = append(s.channels, c)
	return c
}

func (s *Sequencer) Channels() []*Channel  { return s.channels }
func (s *Sequencer) TotalSteps() int       { return s.totalSteps }
func (s *Sequencer) Step() int             { return s.step }
func (s *Sequencer) StepDuration() float64 { return s.stepDuration }

// Update advances the clock by elapsed seconds and returns the notes
// triggered by the steps crossed. A large delta is caught up step by step,
// never skipped, so one big Update and many small ones trigger identically.
// Each note's On is the wall time of its step boundary. The returned slice
// is reused by the next call.
func (s *Sequencer) Update(elapsed float64) []Note {
	s.batch = s.batch[:0]
	s.clock += elapsed
	s.accumulated += elapsed

	for s.accumulated >= s.stepDuration {
		s.accumulated -= s.stepDuration
		s.step++
		if s.step >= s.totalSteps {
			s.step = 0
		}

		at := s.clock - s.accumulated
		for _, c := range s.channels {
			if len(c.steps) == 0 || !c.steps[s.step] {
				continue
			}
			s.batch = append(s.batch, Note{
				ID:      DefaultNoteID,
				On:      at,
				Active:  true,
				Channel: c.Instrument,
			})
		}
	}
	return s.batch
}
