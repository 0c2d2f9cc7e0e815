package tts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// DefaultEndpoint is the readaloud synthesis websocket, token included.
	DefaultEndpoint = "wss://speech.platform.bing.com/consumer/speech/synthesize/readaloud/edge/v1?TrustedClientToken=6A5AA1D4EAFF4E9FB37E23D68491D6F4"

	// DefaultOutputFormat is the only audio encoding the client asks for.
	// Transcoding is out of scope; callers get these bytes as-is.
	DefaultOutputFormat = "audio-24khz-48kbitrate-mono-mp3"

	eventBufferSize = 64
)

// StreamOptions tune a single Communicator. The zero value disables boundary
// metadata and uses the production endpoint.
type StreamOptions struct {
	WordBoundary     bool
	SentenceBoundary bool

	// Endpoint overrides the websocket URL; used by tests.
	Endpoint string
	// OutputFormat overrides the requested audio encoding.
	OutputFormat string
	// Dialer overrides the websocket dialer; used by tests and proxies.
	Dialer *websocket.Dialer
}

// Communicator drives exactly one synthesis request over one websocket and
// yields the service's delivery order unchanged. It is not reusable: build a
// new one per request.
type Communicator struct {
	text  string
	voice VoiceSpec
	opts  StreamOptions
}

// NewCommunicator pairs a pre-validated VoiceSpec with the text to speak.
func NewCommunicator(text string, voice VoiceSpec, opts StreamOptions) *Communicator {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.OutputFormat == "" {
		opts.OutputFormat = DefaultOutputFormat
	}
	if opts.Dialer == nil {
		opts.Dialer = websocket.DefaultDialer
	}
	return &Communicator{text: text, voice: voice, opts: opts}
}

// Stream opens the socket, sends the configuration and request frames, and
// returns a channel fed by a dedicated reader goroutine. The channel yields
// events in delivery order and is closed after StreamEnded or StreamError.
// Cancelling ctx closes the socket and terminates the sequence.
func (c *Communicator) Stream(ctx context.Context) (<-chan Event, error) {
	sep := "?"
	if strings.Contains(c.opts.Endpoint, "?") {
		sep = "&"
	}
	conn, _, err := c.opts.Dialer.DialContext(ctx, c.opts.Endpoint+sep+"ConnectionId="+connectID(), dialHeaders())
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrWebSocket, err)
	}

	date := jsDateString(time.Now())
	if err := conn.WriteMessage(websocket.TextMessage, []byte(speechConfigFrame(date, c.opts.WordBoundary, c.opts.SentenceBoundary, c.opts.OutputFormat))); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: send speech.config: %v", ErrWebSocket, err)
	}
	frame := ssmlFrame(connectID(), date, buildSSML(c.text, c.voice))
	if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: send ssml: %v", ErrWebSocket, err)
	}

	events := make(chan Event, eventBufferSize)
	go c.readLoop(ctx, conn, events)
	return events, nil
}

func dialHeaders() http.Header {
	h := http.Header{}
	h.Set("Pragma", "no-cache")
	h.Set("Cache-Control", "no-cache")
	h.Set("Origin", "chrome-extension://jdiccldimpdaibmpdkjnbmckianbfold")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("User-Agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64)"+
			" AppleWebKit/537.36 (KHTML, like Gecko)"+
			" Chrome/91.0.4472.77 Safari/537.36 Edg/91.0.864.41")
	return h
}

// readLoop is the session state machine: it classifies every inbound frame,
// emits typed events, and terminates on turn.end or the first failure.
func (c *Communicator) readLoop(ctx context.Context, conn *websocket.Conn, events chan<- Event) {
	defer close(events)
	defer conn.Close()

	// Unblock ReadMessage when the caller cancels.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	audioReceived := false
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				c.emit(ctx, events, StreamError{Err: fmt.Errorf("%w: %v", ErrWebSocket, ctx.Err())})
				return
			}
			c.emit(ctx, events, StreamError{Err: fmt.Errorf("%w: %v", ErrWebSocket, err)})
			return
		}

		switch msgType {
		case websocket.TextMessage:
			headers, payload, err := parseTextFrame(data)
			if err != nil {
				c.emit(ctx, events, StreamError{Err: err})
				return
			}
			switch headers["Path"] {
			case "turn.end":
				if !audioReceived {
					c.emit(ctx, events, StreamError{Err: fmt.Errorf("%w: verify that the synthesis parameters are correct", ErrNoAudioReceived)})
					return
				}
				c.emit(ctx, events, StreamEnded{})
				return
			case "response", "turn.start":
				// Session markers, nothing to surface.
			case "audio.metadata":
				boundaries, err := parseMetadata(payload)
				if err != nil {
					c.emit(ctx, events, StreamError{Err: err})
					return
				}
				for _, ev := range boundaries {
					if !c.emit(ctx, events, ev) {
						return
					}
				}
			default:
				c.emit(ctx, events, StreamError{Err: fmt.Errorf("%w: %s", ErrUnknownResponse, data)})
				return
			}
		case websocket.BinaryMessage:
			audio, err := parseBinaryFrame(data)
			if err != nil {
				c.emit(ctx, events, StreamError{Err: err})
				return
			}
			audioReceived = true
			if !c.emit(ctx, events, AudioChunk{Data: audio}) {
				return
			}
		}
	}
}

func (c *Communicator) emit(ctx context.Context, events chan<- Event, ev Event) bool {
	// Prefer delivery: a cancelled context must not swallow an event the
	// buffer still has room for (terminal errors in particular).
	select {
	case events <- ev:
		return true
	default:
	}
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

type metadataPayload struct {
	Metadata []struct {
		Type string `json:"Type"`
		Data struct {
			Offset   uint64 `json:"Offset"`
			Duration uint64 `json:"Duration"`
			Text     struct {
				Text string `json:"Text"`
			} `json:"text"`
		} `json:"Data"`
	} `json:"Metadata"`
}

// parseMetadata turns an audio.metadata payload into boundary events.
// SessionEnd items carry no timing and are skipped.
func parseMetadata(payload []byte) ([]Event, error) {
	var parsed metadataPayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid audio.metadata payload: %v", ErrUnknownResponse, err)
	}

	var out []Event
	for _, item := range parsed.Metadata {
		start := item.Data.Offset
		end := item.Data.Offset + item.Data.Duration
		switch item.Type {
		case "SessionEnd":
		case "WordBoundary":
			out = append(out, WordBoundary{Start: start, End: end, Text: item.Data.Text.Text})
		case "SentenceBoundary":
			out = append(out, SentenceBoundary{Start: start, End: end, Text: item.Data.Text.Text})
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownMetadata, item.Type)
		}
	}
	return out, nil
}
