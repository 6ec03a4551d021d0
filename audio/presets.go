package audio

// Presets maps preset names to constructors. The set is fixed: new sounds
// are added here, not by callers implementing Instrument themselves.
var Presets = map[string]func() Instrument{
	"bell":      NewBell,
	"bell8":     NewBell8,
	"harmonica": NewHarmonica,
	"kick":      NewKick,
	"snare":     NewSnare,
	"hihat":     NewHiHat,
}

// Bell is a glassy sine stack an octave and up above the played degree.
type Bell struct{ voice }

func NewBell() Instrument {
	return &Bell{newVoice("Bell", 1.0, 3.0, ADSR{
		Attack:  0.01,
		Decay:   1.0,
		Sustain: 0.0,
		Release: 1.0,
		Peak:    1.0,
	})}
}

func (b *Bell) Sound(t float64, n Note) (float64, bool) {
	amp := b.env.Amplitude(t, n.On, n.Off)

	sound := 1.00*Osc{Wave: Sine, LFO: vibrato}.Sample(t-n.On, Frequency(n.ID+12, ScaleDefault), nil) +
		0.50*Osc{Wave: Sine}.Sample(t-n.On, Frequency(n.ID+24, ScaleDefault), nil) +
		0.25*Osc{Wave: Sine}.Sample(t-n.On, Frequency(n.ID+36, ScaleDefault), nil)

	return amp * sound * b.volume, amp <= 0
}

// Bell8 is the bell with a square fundamental, somewhere between a bell and
// a chip tune lead.
type Bell8 struct{ voice }

func NewBell8() Instrument {
	return &Bell8{newVoice("8-Bit Bell", 1.0, 3.0, ADSR{
		Attack:  0.01,
		Decay:   0.5,
		Sustain: 0.8,
		Release: 1.0,
		Peak:    1.0,
	})}
}

func (b *Bell8) Sound(t float64, n Note) (float64, bool) {
	amp := b.env.Amplitude(t, n.On, n.Off)

	sound := 1.00*Osc{Wave: Square, LFO: vibrato}.Sample(t-n.On, Frequency(n.ID, ScaleDefault), nil) +
		0.50*Osc{Wave: Sine}.Sample(t-n.On, Frequency(n.ID+12, ScaleDefault), nil) +
		0.25*Osc{Wave: Sine}.Sample(t-n.On, Frequency(n.ID+24, ScaleDefault), nil)

	return amp * sound * b.volume, amp <= 0
}

// Harmonica layers squares over an analogue saw and a breath of noise.
type Harmonica struct{ voice }

func NewHarmonica() Instrument {
	return &Harmonica{newVoice("Harmonica", 0.3, -1.0, ADSR{
		Attack:  0.0,
		Decay:   1.0,
		Sustain: 0.95,
		Release: 0.1,
		Peak:    1.0,
	})}
}

func (h *Harmonica) Sound(t float64, n Note) (float64, bool) {
	amp := h.env.Amplitude(t, n.On, n.Off)

	// The saw term runs on reversed note time. It reads like a typo, but
	// it gives the attack a breathy chirp, so it stays.
	sound := 1.00*Osc{Wave: SawAnalogue, LFO: vibrato, Harmonics: 100}.Sample(n.On-t, Frequency(n.ID-12, ScaleDefault), nil) +
		1.00*Osc{Wave: Square, LFO: vibrato}.Sample(t-n.On, Frequency(n.ID, ScaleDefault), nil) +
		0.50*Osc{Wave: Square}.Sample(t-n.On, Frequency(n.ID+12, ScaleDefault), nil) +
		0.05*Osc{Wave: Noise}.Sample(t-n.On, Frequency(n.ID+24, ScaleDefault), h.rnd)

	return amp * sound * h.volume, amp <= 0
}

// Kick is a deep sine thump with a pinch of noise for the beater.
type Kick struct{ voice }

func NewKick() Instrument {
	return &Kick{newVoice("Drum Kick", 1.0, 1.5, ADSR{
		Attack:  0.01,
		Decay:   0.15,
		Sustain: 0.0,
		Release: 0.0,
		Peak:    1.0,
	})}
}

func (k *Kick) Sound(t float64, n Note) (float64, bool) {
	amp := k.env.Amplitude(t, n.On, n.Off)

	sound := 0.99*Osc{Wave: Sine, LFO: LFO{Hertz: 1, Depth: 1}}.Sample(t-n.On, Frequency(n.ID-36, ScaleDefault), nil) +
		0.01*Osc{Wave: Noise}.Sample(t-n.On, 0, k.rnd)

	return amp * sound * k.volume, k.expired(t, n)
}

// Snare is an equal blend of a wobbling sine and noise.
type Snare struct{ voice }

func NewSnare() Instrument {
	return &Snare{newVoice("Drum Snare", 1.0, 1.0, ADSR{
		Attack:  0.0,
		Decay:   0.2,
		Sustain: 0.0,
		Release: 0.0,
		Peak:    1.0,
	})}
}

func (s *Snare) Sound(t float64, n Note) (float64, bool) {
	amp := s.env.Amplitude(t, n.On, n.Off)

	sound := 0.5*Osc{Wave: Sine, LFO: LFO{Hertz: 0.5, Depth: 1}}.Sample(t-n.On, Frequency(n.ID-24, ScaleDefault), nil) +
		0.5*Osc{Wave: Noise}.Sample(t-n.On, 0, s.rnd)

	return amp * sound * s.volume, s.expired(t, n)
}

// HiHat is mostly noise with a faint square underneath.
type HiHat struct{ voice }

func NewHiHat() Instrument {
	return &HiHat{newVoice("Drum HiHat", 0.5, 1.0, ADSR{
		Attack:  0.01,
		Decay:   0.05,
		Sustain: 0.0,
		Release: 0.0,
		Peak:    1.0,
	})}
}

func (h *HiHat) Sound(t float64, n Note) (float64, bool) {
	amp := h.env.Amplitude(t, n.On, n.Off)

	sound := 0.1*Osc{Wave: Square, LFO: LFO{Hertz: 1.5, Depth: 1}}.Sample(t-n.On, Frequency(n.ID-12, ScaleDefault), nil) +
		0.9*Osc{Wave: Noise}.Sample(t-n.On, 0, h.rnd)

	return amp * sound * h.volume, h.expired(t, n)
}
