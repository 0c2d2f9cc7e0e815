package tts

import "errors"

// Every error below is fatal to the stream it occurs on. The client never
// retries internally; callers decide what to do with partial audio they may
// have buffered before the failure.
var (
	// ErrInvalidParameter reports a voice/rate/volume/pitch string that does
	// not match its grammar. Raised at construction time, before any network
	// activity.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrMalformedFrame reports a text frame without a header/payload
	// delimiter, or a header line without a colon.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrUnexpectedResponse reports a binary frame shorter than its 2-byte
	// header-length prefix.
	ErrUnexpectedResponse = errors.New("unexpected response")

	// ErrMissingAudioData reports a binary frame whose declared header length
	// exceeds the frame's actual size.
	ErrMissingAudioData = errors.New("missing audio data")

	// ErrUnknownResponse reports a text frame whose Path header is not one of
	// the recognized values.
	ErrUnknownResponse = errors.New("unknown response")

	// ErrUnknownMetadata reports an audio.metadata item of an unrecognized
	// type.
	ErrUnknownMetadata = errors.New("unknown metadata response")

	// ErrWebSocket reports a transport-level websocket failure.
	ErrWebSocket = errors.New("websocket error")

	// ErrNoAudioReceived reports a stream that reached its terminal frame
	// without ever producing audio.
	ErrNoAudioReceived = errors.New("no audio received")
)
