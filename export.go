package main

import (
	"fmt"
	"os"

	"github.com/mrdg/groove/audio"
	wav "github.com/youpy/go-wav"
)

// bounce renders bars of the session's current patterns offline and writes
// them to a 16-bit stereo WAV file. It rebuilds the sequencer and the
// instruments from the session's setup so the live stream keeps playing
// undisturbed while the bounce runs.
func bounce(s *session, file string, bars int) error {
	if bars <= 0 {
		return fmt.Errorf("bars must be positive, got %d", bars)
	}

	type offlineTrack struct {
		channel *audio.Channel
		gain    float64
	}

	s.mu.Lock()
	seq, err := audio.NewSequencer(s.tempo, s.beats, s.subBeats)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	var tracks []offlineTrack
	for _, tr := range s.tracks {
		ch := seq.AddInstrument(audio.Presets[tr.preset]())
		if p := tr.channel.Pattern(); p != "" {
			if err := ch.SetPattern(p); err != nil {
				s.mu.Unlock()
				return err
			}
		}
		tracks = append(tracks, offlineTrack{ch, s.controls.Gain(tr.name)})
	}
	master := s.controls.Level()
	hold := s.hold
	s.mu.Unlock()

	barDuration := seq.StepDuration() * float64(seq.TotalSteps())
	frames := int(float64(bars) * barDuration * sampleRate)

	const frameDuration = 1.0 / sampleRate
	active := make([][]audio.Note, len(tracks))
	samples := make([]wav.Sample, 0, frames)
	var clock float64

	for f := 0; f < frames; f++ {
		for _, n := range seq.Update(frameDuration) {
			for i, tr := range tracks {
				if tr.channel.Instrument == n.Channel {
					active[i] = append(active[i], n)
					break
				}
			}
		}
		var sum float64
		for i, tr := range tracks {
			active[i] = mix(clock, hold, active[i], tr.gain, &sum)
		}
		v := clamp(sum * master)
		p := int(v * 32767)
		samples = append(samples, wav.Sample{Values: [2]int{p, p}})
		clock += frameDuration
	}

	fh, err := os.Create(file)
	if err != nil {
		return err
	}
	w := wav.NewWriter(fh, uint32(frames), nChannels, sampleRate, 16)
	if err := w.WriteSamples(samples); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
