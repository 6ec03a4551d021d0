package audio

import (
	"math/rand"
	"time"
)

// Instrument renders notes. Implementations form a closed set of presets
// (see presets.go); an instrument is long-lived and shared by every note
// played through it.
type Instrument interface {
	// Name returns the preset's display name.
	Name() string

	// Sound renders one sample of n at time t. The boolean reports that
	// the note's audible life is over: once true, the host stops
	// rendering the note and discards it. Sound allocates nothing and
	// takes no locks, so it is safe to call from the audio callback.
	Sound(t float64, n Note) (float64, bool)
}

// voice carries what every preset owns: an envelope, a volume scalar, an
// optional lifetime bound and a private noise source. Giving each instrument
// its own generator keeps rendering reentrant when voices run on separate
// goroutines.
type voice struct {
	name    string
	volume  float64
	maxLife float64 // seconds; <= 0 means unbounded
	env     ADSR
	rnd     *rand.Rand
}

func newVoice(name string, volume, maxLife float64, env ADSR) voice {
	return voice{
		name:    name,
		volume:  volume,
		maxLife: maxLife,
		env:     env,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (v *voice) Name() string { return v.name }

// expired reports whether a lifetime-bounded voice is past its maximum note
// length, regardless of where the envelope is. The percussive presets have
// no release phase worth waiting for and cut off on this instead.
func (v *voice) expired(t float64, n Note) bool {
	return v.maxLife > 0 && t-n.On >= v.maxLife
}

// vibrato is the light phase modulation shared by the melodic presets.
var vibrato = LFO{Hertz: 5, Depth: 0.001}
