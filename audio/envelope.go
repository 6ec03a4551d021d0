package audio

// silenceThreshold is where an envelope is considered fully decayed.
// Amplitudes at or below it snap to exactly 0, which is the value voices
// use to declare a note finished.
const silenceThreshold = 0.01

// ADSR holds attack/decay/sustain/release envelope parameters. The struct is
// immutable after instrument construction and shared by every note the
// instrument renders: Amplitude is a pure function of the note's on/off
// timestamps, so there is no per-note envelope state to track and a released
// note resumes a correct release curve from any wall-clock time.
type ADSR struct {
	Attack  float64 // seconds to ramp from 0 to Peak
	Decay   float64 // seconds to ramp from Peak to Sustain
	Sustain float64 // amplitude held for as long as the note stays on
	Release float64 // seconds to ramp from the release point down to 0
	Peak    float64 // amplitude reached at the end of the attack
}

// Amplitude computes the envelope value at time t for a note switched on at
// on and off at off, all in the same time domain. on > off means the note is
// still held.
func (e ADSR) Amplitude(t, on, off float64) float64 {
	var amp float64
	if on > off {
		amp = e.held(t - on)
	} else {
		// Ramp down from wherever the envelope was at the moment of
		// release.
		release := e.held(off - on)
		if e.Release > 0 {
			amp = (t-off)/e.Release*(0-release) + release
		}
	}
	if amp <= silenceThreshold {
		return 0
	}
	return amp
}

// held evaluates the attack/decay/sustain phases for a note that has been on
// for life seconds. Zero-length phases skip straight to the next one rather
// than dividing by zero.
func (e ADSR) held(life float64) float64 {
	switch {
	case life < 0:
		return 0
	case life <= e.Attack:
		if e.Attack == 0 {
			return e.Peak
		}
		return life / e.Attack * e.Peak
	case life <= e.Attack+e.Decay:
		if e.Decay == 0 {
			return e.Sustain
		}
		return (life-e.Attack)/e.Decay*(e.Sustain-e.Peak) + e.Peak
	default:
		return e.Sustain
	}
}
