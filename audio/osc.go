package audio

import (
	"math"
	"math/rand"
)

const twoPi = 2 * math.Pi

// Waveform selects the shape an Osc produces.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
	SawAnalogue
	SawDigital
	Noise
)

// defaultHarmonics bounds the additive saw when Osc.Harmonics is left unset.
const defaultHarmonics = 50

// AngularVelocity converts a frequency in Hz to radians per second.
func AngularVelocity(hertz float64) float64 {
	return hertz * twoPi
}

// LFO describes vibrato applied to an oscillator as phase modulation.
type LFO struct {
	Hertz float64
	Depth float64
}

// Osc is a stateless oscillator. The zero value is a plain sine; instruments
// build their recipes out of fixed Osc values, so constructing one per call
// costs nothing on the render path.
type Osc struct {
	Wave      Waveform
	LFO       LFO
	Harmonics int // additive saw partial count, 0 means defaultHarmonics
}

// Sample returns the oscillator output at time t (seconds) for a base
// frequency in Hz. rnd is only consulted by Noise; passing nil falls back to
// the shared math/rand source, which serializes internally. All waveforms
// stay within [-1, 1] except the analogue saw, whose partial sums overshoot
// slightly near the discontinuity.
func (o Osc) Sample(t, hertz float64, rnd *rand.Rand) float64 {
	phase := AngularVelocity(hertz)*t + o.LFO.Depth*hertz*math.Sin(AngularVelocity(o.LFO.Hertz)*t)

	switch o.Wave {
	case Sine:
		return math.Sin(phase)

	case Square:
		if math.Sin(phase) >= 0 {
			return 1
		}
		return -1

	case Triangle:
		return math.Asin(math.Sin(phase)) * (2 / math.Pi)

	case SawAnalogue:
		harmonics := o.Harmonics
		if harmonics <= 0 {
			harmonics = defaultHarmonics
		}
		var out float64
		for n := 1; n < harmonics; n++ {
			out += math.Sin(float64(n)*phase) / float64(n)
		}
		return out * (2 / math.Pi)

	case SawDigital:
		if hertz == 0 {
			return 0
		}
		return (2 / math.Pi) * (hertz*math.Pi*math.Mod(t, 1/hertz) - math.Pi/2)

	case Noise:
		if rnd == nil {
			return 2*rand.Float64() - 1
		}
		return 2*rnd.Float64() - 1

	default:
		return 0
	}
}
