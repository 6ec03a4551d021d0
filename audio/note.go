package audio

// Note is one triggered instance of an instrument voice. On and Off are
// timestamps in the host's time domain: On is stamped once when the note is
// triggered and Off once when it is released, so On > Off means the note is
// still held. A note whose Off is set is on its way to silence and is never
// reactivated; retriggering means a fresh Note.
//
// The host owns the collection of live notes. It adds a note when the
// sequencer (or its own input) triggers one and drops it when the voice
// reports that the note is finished.
type Note struct {
	ID      int     // scale degree
	On      float64 // trigger time in seconds
	Off     float64 // release time in seconds, zero until released
	Active  bool
	Channel Instrument // voice that renders this note; shared, not owned
}
