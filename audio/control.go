package audio

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Gain limits in dB.
const (
	minGain = -40.0
	maxGain = 6.0
)

// Controls holds the mixer settings the control goroutine writes and the
// audio callback reads. Values live in atomic.Values so the render path
// never takes a lock waiting on the REPL. Channels must be registered before
// the stream starts; after that the map is only read.
type Controls struct {
	level    atomic.Value
	channels map[string]*channelControl
}

type channelControl struct {
	gain atomic.Value // dB
	mute atomic.Value // bool
}

func NewControls() *Controls {
	c := &Controls{channels: make(map[string]*channelControl)}
	c.level.Store(0.0)
	return c
}

// AddChannel registers mixer state for a named channel at unity gain,
// unmuted.
func (c *Controls) AddChannel(name string) error {
	if _, ok := c.channels[name]; ok {
		return fmt.Errorf("channel already exists: %s", name)
	}
	ch := &channelControl{}
	ch.gain.Store(0.0)
	ch.mute.Store(false)
	c.channels[name] = ch
	return nil
}

// SetGain sets a channel's gain in dB.
func (c *Controls) SetGain(name string, db float64) error {
	ch, ok := c.channels[name]
	if !ok {
		return fmt.Errorf("unknown channel: %s", name)
	}
	if db < minGain || db > maxGain {
		return fmt.Errorf("gain %v dB is out of range %v to %v", db, minGain, maxGain)
	}
	ch.gain.Store(db)
	return nil
}

// Gain returns the channel's linear gain factor, 0 when muted or unknown.
func (c *Controls) Gain(name string) float64 {
	ch, ok := c.channels[name]
	if !ok {
		return 0
	}
	if ch.mute.Load().(bool) {
		return 0
	}
	return dbToLinear(ch.gain.Load().(float64))
}

// ToggleMute flips a channel's mute flag.
func (c *Controls) ToggleMute(name string) error {
	ch, ok := c.channels[name]
	if !ok {
		return fmt.Errorf("unknown channel: %s", name)
	}
	ch.mute.Store(!ch.mute.Load().(bool))
	return nil
}

// Muted reports whether a channel is muted.
func (c *Controls) Muted(name string) bool {
	ch, ok := c.channels[name]
	if !ok {
		return false
	}
	return ch.mute.Load().(bool)
}

// SetLevel sets the master level in dB.
func (c *Controls) SetLevel(db float64) error {
	if db < minGain || db > maxGain {
		return fmt.Errorf("level %v dB is out of range %v to %v", db, minGain, maxGain)
	}
	c.level.Store(db)
	return nil
}

// Level returns the master level as a linear gain factor.
func (c *Controls) Level() float64 {
	return dbToLinear(c.level.Load().(float64))
}

func dbToLinear(db float64) float64 {
	return math.Pow(10, db/20.0)
}
