package audio

import (
	"math"
	"testing"
)

func TestSquareIsNeverZero(t *testing.T) {
	osc := Osc{Wave: Square}
	for _, hertz := range []float64{1, 55, 440, 1234.5} {
		for i := 0; i < 10000; i++ {
			v := osc.Sample(float64(i)/44100, hertz, nil)
			if v != 1 && v != -1 {
				t.Fatalf("square(%v Hz, sample %d) = %v, want exactly 1 or -1", hertz, i, v)
			}
		}
	}
}

func TestTriangleStaysInRange(t *testing.T) {
	osc := Osc{Wave: Triangle}
	for i := 0; i < 10000; i++ {
		v := osc.Sample(float64(i)/44100, 440, nil)
		if v < -1 || v > 1 {
			t.Fatalf("triangle sample %d = %v, out of [-1, 1]", i, v)
		}
	}
}

func TestAnalogueSawStaysNearUnitRange(t *testing.T) {
	// Partial sums of the saw series overshoot near the discontinuity
	// (Gibbs), so the bound is looser than [-1, 1].
	for _, harmonics := range []int{10, 50, 100} {
		osc := Osc{Wave: SawAnalogue, Harmonics: harmonics}
		for i := 0; i < 10000; i++ {
			v := osc.Sample(float64(i)/44100, 110, nil)
			if v < -1.2 || v > 1.2 {
				t.Fatalf("saw(%d harmonics) sample %d = %v, out of [-1.2, 1.2]", harmonics, i, v)
			}
		}
	}
}

func TestDigitalSawZeroFrequency(t *testing.T) {
	osc := Osc{Wave: SawDigital}
	if v := osc.Sample(0.5, 0, nil); v != 0 {
		t.Fatalf("digital saw at 0 Hz = %v, want 0", v)
	}
}

func TestNoiseStaysInRange(t *testing.T) {
	osc := Osc{Wave: Noise}
	for i := 0; i < 10000; i++ {
		v := osc.Sample(0, 0, nil)
		if v < -1 || v > 1 {
			t.Fatalf("noise sample %d = %v, out of [-1, 1]", i, v)
		}
	}
}

func TestAngularVelocity(t *testing.T) {
	if got, want := AngularVelocity(1), 2*math.Pi; math.Abs(got-want) > 1e-12 {
		t.Fatalf("AngularVelocity(1) = %v, want %v", got, want)
	}
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		note int
		want float64
	}{
		{0, 8},
		{12, 16},  // one octave up doubles
		{24, 32},
		{-12, 4},
	}
	for _, test := range tests {
		if got := Frequency(test.note, ScaleDefault); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("Frequency(%d) = %v, want %v", test.note, got, test.want)
		}
	}

	// Adjacent degrees differ by an equal-tempered semitone.
	ratio := Frequency(1, ScaleDefault) / Frequency(0, ScaleDefault)
	if math.Abs(ratio-math.Pow(2, 1.0/12)) > 1e-12 {
		t.Errorf("semitone ratio = %v, want 2^(1/12)", ratio)
	}
}

func TestFrequencyUnknownScaleFallsBack(t *testing.T) {
	for _, note := range []int{0, 31, 64} {
		if got, want := Frequency(note, Scale(42)), Frequency(note, ScaleDefault); got != want {
			t.Errorf("Frequency(%d, 42) = %v, want default mapping %v", note, got, want)
		}
	}
}
