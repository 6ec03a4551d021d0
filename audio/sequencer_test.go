package audio

import (
	"math"
	"strings"
	"testing"
)

func TestNewSequencerValidation(t *testing.T) {
	tests := []struct {
		tempo           float64
		beats, subBeats int
	}{
		{0, 4, 4},
		{-120, 4, 4},
		{120, 0, 4},
		{120, 4, 0},
		{120, -1, 4},
	}
	for _, test := range tests {
		if _, err := NewSequencer(test.tempo, test.beats, test.subBeats); err == nil {
			t.Errorf("NewSequencer(%v, %d, %d): want error, got nil",
				test.tempo, test.beats, test.subBeats)
		}
	}
}

func TestSetPatternLength(t *testing.T) {
	seq, err := NewSequencer(120, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	c := seq.AddInstrument(NewKick())

	if err := c.SetPattern("X..."); err == nil {
		t.Error("short pattern accepted")
	}
	if err := c.SetPattern(strings.Repeat("X", 17)); err == nil {
		t.Error("long pattern accepted")
	}
	if err := c.SetPattern("X...X...X...X..."); err != nil {
		t.Errorf("valid pattern rejected: %v", err)
	}
}

func TestUpdateTriggersPerBar(t *testing.T) {
	seq, err := NewSequencer(120, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	kick := seq.AddInstrument(NewKick())
	hat := seq.AddInstrument(NewHiHat())
	if err := kick.SetPattern("X...X...X..X.X.."); err != nil {
		t.Fatal(err)
	}
	if err := hat.SetPattern("X.X.X.X.X.X.X.XX"); err != nil {
		t.Fatal(err)
	}

	// One bar at 120 BPM with 4 sub-beats is 16 steps of 0.125s.
	counts := make(map[Instrument]int)
	for i := 0; i < 16; i++ {
		for _, n := range seq.Update(0.125) {
			counts[n.Channel]++
			if n.ID != DefaultNoteID {
				t.Errorf("note ID = %d, want %d", n.ID, DefaultNoteID)
			}
			if !n.Active {
				t.Error("triggered note is not active")
			}
			if n.Off != 0 {
				t.Errorf("triggered note has Off = %v, want 0", n.Off)
			}
		}
	}

	if got, want := counts[kick.Instrument], 5; got != want {
		t.Errorf("kick triggered %d times, want %d", got, want)
	}
	if got, want := counts[hat.Instrument], 9; got != want {
		t.Errorf("hihat triggered %d times, want %d", got, want)
	}
}

func TestUpdateCatchUp(t *testing.T) {
	// One Update covering ten steps is equivalent to ten Updates of one
	// step: same notes, same On times.
	build := func() *Sequencer {
		seq, err := NewSequencer(120, 4, 4)
		if err != nil {
			t.Fatal(err)
		}
		c := seq.AddInstrument(NewSnare())
		if err := c.SetPattern("XXXXXXXXXXXXXXXX"); err != nil {
			t.Fatal(err)
		}
		return seq
	}

	bulk := build()
	steps := build()

	var bulkNotes []Note
	bulkNotes = append(bulkNotes, bulk.Update(10*0.125)...)

	var stepNotes []Note
	for i := 0; i < 10; i++ {
		stepNotes = append(stepNotes, steps.Update(0.125)...)
	}

	if len(bulkNotes) != 10 || len(stepNotes) != 10 {
		t.Fatalf("got %d bulk and %d stepped notes, want 10 each", len(bulkNotes), len(stepNotes))
	}
	for i := range bulkNotes {
		if math.Abs(bulkNotes[i].On-stepNotes[i].On) > 1e-9 {
			t.Errorf("note %d: bulk On = %v, stepped On = %v", i, bulkNotes[i].On, stepNotes[i].On)
		}
	}
	if bulk.Step() != steps.Step() {
		t.Errorf("bulk step = %d, stepped step = %d", bulk.Step(), steps.Step())
	}
}

func TestUpdateSmallDeltaTriggersNothing(t *testing.T) {
	seq, err := NewSequencer(120, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	c := seq.AddInstrument(NewKick())
	if err := c.SetPattern("XXXXXXXXXXXXXXXX"); err != nil {
		t.Fatal(err)
	}

	// Deltas accumulate: three quarters of a step is silent, the
	// remaining quarter completes it.
	for i := 0; i < 3; i++ {
		if notes := seq.Update(0.125 / 4); len(notes) != 0 {
			t.Fatalf("premature trigger after %d partial updates", i+1)
		}
	}
	if notes := seq.Update(0.125 / 4); len(notes) != 1 {
		t.Fatalf("got %d notes after a full step accumulated, want 1", len(notes))
	}
}

func TestChannelWithoutPatternIsSilent(t *testing.T) {
	seq, err := NewSequencer(120, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	seq.AddInstrument(NewKick())

	for i := 0; i < 32; i++ {
		if notes := seq.Update(0.125); len(notes) != 0 {
			t.Fatal("channel without a pattern triggered notes")
		}
	}
}

func TestStepWraps(t *testing.T) {
	seq, err := NewSequencer(120, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3, 0, 1, 2, 3, 0}
	for i, w := range want {
		seq.Update(seq.StepDuration())
		if got := seq.Step(); got != w {
			t.Fatalf("after update %d: step = %d, want %d", i+1, got, w)
		}
	}
}
