package tts

// Event is one element of the stream produced by a Communicator. Offsets and
// durations are expressed in 100-nanosecond ticks of service time.
//
// Consumers should switch exhaustively over the concrete types; the set is
// closed.
type Event interface {
	isStreamEvent()
}

// AudioChunk carries one binary frame's worth of raw audio bytes.
type AudioChunk struct {
	Data []byte
}

// WordBoundary marks the timed extent of one synthesized word.
// End = Start + duration as reported by the service.
type WordBoundary struct {
	Start uint64
	End   uint64
	Text  string
}

// SentenceBoundary marks the timed extent of one synthesized sentence.
type SentenceBoundary struct {
	Start uint64
	End   uint64
	Text  string
}

// StreamEnded is the last event of a successful stream; the channel is
// closed right after it.
type StreamEnded struct{}

// StreamError terminates the stream with the wrapped failure; the channel is
// closed right after it. At most one StreamError is delivered per stream.
type StreamError struct {
	Err error
}

func (AudioChunk) isStreamEvent()       {}
func (WordBoundary) isStreamEvent()     {}
func (SentenceBoundary) isStreamEvent() {}
func (StreamEnded) isStreamEvent()      {}
func (StreamError) isStreamEvent()      {}

func (e StreamError) Error() string { return e.Err.Error() }
func (e StreamError) Unwrap() error { return e.Err }
