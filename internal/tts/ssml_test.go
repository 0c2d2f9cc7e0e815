package tts

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"
)

func mustVoice(t *testing.T) VoiceSpec {
	t.Helper()
	spec, err := NewVoiceSpec("en-US-AriaNeural", "-10%", "+20%", "+5Hz")
	if err != nil {
		t.Fatalf("NewVoiceSpec() error = %v", err)
	}
	return spec
}

func TestBuildSSMLEnvelope(t *testing.T) {
	got := buildSSML("Hello world", mustVoice(t))
	want := "<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' xml:lang='en-US'>" +
		"<voice name='Microsoft Server Speech Text to Speech Voice (en-US, AriaNeural)'>" +
		"<prosody pitch='+5Hz' rate='-10%' volume='+20%'>Hello world</prosody>" +
		"</voice></speak>"
	if got != want {
		t.Fatalf("buildSSML() = %q, want %q", got, want)
	}
}

func TestBuildSSMLEmbedsTextVerbatim(t *testing.T) {
	// The builder does not escape markup; callers must pre-sanitize.
	got := buildSSML("a < b & c", mustVoice(t))
	if !strings.Contains(got, ">a < b & c</prosody>") {
		t.Fatalf("buildSSML() = %q, want verbatim text", got)
	}
}

func TestSpeechConfigFrame(t *testing.T) {
	frame := speechConfigFrame("somedate", true, false, DefaultOutputFormat)

	for _, header := range []string{
		"X-Timestamp:somedate\r\n",
		"Content-Type:application/json; charset=utf-8\r\n",
		"Path:speech.config\r\n\r\n",
	} {
		if !strings.Contains(frame, header) {
			t.Fatalf("frame %q missing %q", frame, header)
		}
	}
	if !strings.HasSuffix(frame, "\r\n") {
		t.Fatalf("frame does not end with CRLF: %q", frame)
	}

	headers, payload, err := parseTextFrame([]byte(frame))
	if err != nil {
		t.Fatalf("parseTextFrame(config frame) error = %v", err)
	}
	if headers["Path"] != "speech.config" {
		t.Fatalf("Path = %q, want speech.config", headers["Path"])
	}

	var body struct {
		Context struct {
			Synthesis struct {
				Audio struct {
					MetadataOptions struct {
						SentenceBoundaryEnabled string `json:"sentenceBoundaryEnabled"`
						WordBoundaryEnabled     string `json:"wordBoundaryEnabled"`
					} `json:"metadataoptions"`
					OutputFormat string `json:"outputFormat"`
				} `json:"audio"`
			} `json:"synthesis"`
		} `json:"context"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		t.Fatalf("config payload is not JSON: %v", err)
	}
	audio := body.Context.Synthesis.Audio
	if audio.MetadataOptions.WordBoundaryEnabled != "True" {
		t.Fatalf("wordBoundaryEnabled = %q, want True", audio.MetadataOptions.WordBoundaryEnabled)
	}
	if audio.MetadataOptions.SentenceBoundaryEnabled != "False" {
		t.Fatalf("sentenceBoundaryEnabled = %q, want False", audio.MetadataOptions.SentenceBoundaryEnabled)
	}
	if audio.OutputFormat != DefaultOutputFormat {
		t.Fatalf("outputFormat = %q, want %q", audio.OutputFormat, DefaultOutputFormat)
	}
}

func TestSSMLFrame(t *testing.T) {
	frame := ssmlFrame("deadbeef", "somedate", "<speak>hi</speak>")
	headers, payload, err := parseTextFrame([]byte(frame))
	if err != nil {
		t.Fatalf("parseTextFrame(ssml frame) error = %v", err)
	}
	if headers["X-RequestId"] != "deadbeef" {
		t.Fatalf("X-RequestId = %q, want deadbeef", headers["X-RequestId"])
	}
	if headers["X-Timestamp"] != "somedateZ" {
		t.Fatalf("X-Timestamp = %q, want somedateZ", headers["X-Timestamp"])
	}
	if headers["Content-Type"] != "application/ssml+xml" {
		t.Fatalf("Content-Type = %q, want application/ssml+xml", headers["Content-Type"])
	}
	if headers["Path"] != "ssml" {
		t.Fatalf("Path = %q, want ssml", headers["Path"])
	}
	if string(payload) != "<speak>hi</speak>" {
		t.Fatalf("payload = %q, want markup", payload)
	}
}

func TestConnectIDIs32Hex(t *testing.T) {
	hex32 := regexp.MustCompile(`^[0-9a-f]{32}$`)
	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		id := connectID()
		if !hex32.MatchString(id) {
			t.Fatalf("connectID() = %q, want 32 lowercase hex chars", id)
		}
		if seen[id] {
			t.Fatalf("connectID() repeated %q", id)
		}
		seen[id] = true
	}
}

func TestJSDateString(t *testing.T) {
	at := time.Date(2024, time.March, 5, 13, 7, 9, 0, time.UTC)
	got := jsDateString(at)
	want := "Tue Mar 05 2024 13:07:09 GMT+0000 (Coordinated Universal Time)"
	if got != want {
		t.Fatalf("jsDateString() = %q, want %q", got, want)
	}
}
