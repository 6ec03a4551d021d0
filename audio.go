package main

import "github.com/mrdg/groove/audio"

// process is the portaudio callback: advance the sequencer by the buffer's
// duration, adopt whatever notes it triggered, then mix every live note into
// the output and drop the ones whose voice reported the end of their life.
func (s *session) process(out [][]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	frames := len(out[0])
	dt := float64(frames) / sampleRate

	for _, n := range s.seq.Update(dt) {
		for i, tr := range s.tracks {
			if tr.channel.Instrument == n.Channel {
				s.active[i] = append(s.active[i], n)
				break
			}
		}
	}

	master := s.controls.Level()
	for i, tr := range s.tracks {
		gain := s.controls.Gain(tr.name)
		notes := s.active[i]
		kept := notes[:0]
		for k := range notes {
			n := notes[k]
			for f := 0; f < frames; f++ {
				now := s.clock + float64(f)/sampleRate
				if now < n.On {
					continue
				}
				// The sequencer emits held notes; release them
				// after the hold time so sustaining voices ring
				// out instead of piling up forever.
				if n.Off <= n.On && now >= n.On+s.hold {
					n.Off = now
				}
				sample, finished := n.Channel.Sound(now, n)
				if finished && n.Off > n.On {
					n.Active = false
					break
				}
				s.sum[f] += sample * gain
			}
			if n.Active {
				kept = append(kept, n)
			}
		}
		s.active[i] = kept
	}

	for f := 0; f < frames; f++ {
		v := float32(s.sum[f] * master)
		out[0][f] = v
		out[1][f] = v
		s.sum[f] = 0
	}
	s.clock += dt
}

// mix renders one frame of a note set offline, mirroring what process does
// per frame. It returns the surviving notes; callers reuse the slice.
func mix(now, hold float64, notes []audio.Note, gain float64, sum *float64) []audio.Note {
	kept := notes[:0]
	for k := range notes {
		n := notes[k]
		if now >= n.On {
			if n.Off <= n.On && now >= n.On+hold {
				n.Off = now
			}
			sample, finished := n.Channel.Sound(now, n)
			if finished && n.Off > n.On {
				n.Active = false
			} else {
				*sum += sample * gain
			}
		}
		if n.Active {
			kept = append(kept, n)
		}
	}
	return kept
}
