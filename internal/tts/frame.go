package tts

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

var frameDelimiter = []byte("\r\n\r\n")

// parseTextFrame splits a text frame into its header map and payload. The
// header block ends at the first blank-line delimiter; each header line is
// split on the first colon only.
func parseTextFrame(raw []byte) (map[string]string, []byte, error) {
	idx := bytes.Index(raw, frameDelimiter)
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: missing header delimiter", ErrMalformedFrame)
	}

	headers := make(map[string]string)
	for _, line := range bytes.Split(raw[:idx], []byte("\r\n")) {
		colon := bytes.IndexByte(line, ':')
		if colon < 0 {
			return nil, nil, fmt.Errorf("%w: header line %q has no colon", ErrMalformedFrame, line)
		}
		headers[string(line[:colon])] = string(line[colon+1:])
	}

	return headers, raw[idx+len(frameDelimiter):], nil
}

// parseBinaryFrame extracts the audio payload from a binary frame. The first
// two bytes are a big-endian header length; the header region itself is
// ignored, not decoded.
func parseBinaryFrame(raw []byte) ([]byte, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("%w: binary frame is missing the header length", ErrUnexpectedResponse)
	}
	headerLen := int(binary.BigEndian.Uint16(raw[:2]))
	if len(raw) < headerLen+2 {
		return nil, fmt.Errorf("%w: frame is %d bytes, header claims %d", ErrMissingAudioData, len(raw), headerLen)
	}
	return raw[headerLen+2:], nil
}
