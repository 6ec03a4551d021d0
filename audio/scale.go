package audio

import "math"

// Scale identifies a mapping from scale degrees to frequencies.
type Scale int

// ScaleDefault is 12-tone equal temperament with degree 0 at 8 Hz, one
// octave per 12 degrees.
const ScaleDefault Scale = 0

const semitone = 1.0594630943592953 // 2^(1/12)

// Frequency converts a scale degree to a frequency in Hz. An unknown scale
// deliberately falls back to the default mapping instead of failing: a bad
// scale id selects standard tuning, it doesn't silence the voice.
func Frequency(note int, s Scale) float64 {
	switch s {
	default:
		return 8 * math.Pow(semitone, float64(note))
	}
}
