package tts

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// buildSSML renders the request markup for one synthesis. The text is
// embedded verbatim: the service treats the payload as SSML, so callers that
// accept untrusted input must strip markup-significant characters themselves.
func buildSSML(text string, voice VoiceSpec) string {
	return "<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' xml:lang='en-US'>" +
		fmt.Sprintf("<voice name='%s'>", voice.Name()) +
		fmt.Sprintf("<prosody pitch='%s' rate='%s' volume='%s'>%s</prosody>", voice.Pitch(), voice.Rate(), voice.Volume(), text) +
		"</voice></speak>"
}

type metadataOptions struct {
	SentenceBoundaryEnabled string `json:"sentenceBoundaryEnabled"`
	WordBoundaryEnabled     string `json:"wordBoundaryEnabled"`
}

type speechConfig struct {
	Context struct {
		Synthesis struct {
			Audio struct {
				MetadataOptions metadataOptions `json:"metadataoptions"`
				OutputFormat    string          `json:"outputFormat"`
			} `json:"audio"`
		} `json:"synthesis"`
	} `json:"context"`
}

// speechConfigFrame builds the configuration text frame sent once per
// session. The service expects Python-style capitalized booleans.
func speechConfigFrame(date string, wordBoundary, sentenceBoundary bool, outputFormat string) string {
	var cfg speechConfig
	cfg.Context.Synthesis.Audio.MetadataOptions = metadataOptions{
		SentenceBoundaryEnabled: pyBool(sentenceBoundary),
		WordBoundaryEnabled:     pyBool(wordBoundary),
	}
	cfg.Context.Synthesis.Audio.OutputFormat = outputFormat

	body, _ := json.Marshal(cfg)
	return "X-Timestamp:" + date + "\r\n" +
		"Content-Type:application/json; charset=utf-8\r\n" +
		"Path:speech.config\r\n\r\n" +
		string(body) + "\r\n"
}

// ssmlFrame builds the request text frame carrying the markup payload.
func ssmlFrame(requestID, date, ssml string) string {
	return "X-RequestId:" + requestID + "\r\n" +
		"X-Timestamp:" + date + "Z\r\n" +
		"Content-Type:application/ssml+xml\r\n" +
		"Path:ssml\r\n\r\n" +
		ssml
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// connectID returns a fresh request identifier: a UUID with the dashes
// stripped, as the service expects.
func connectID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// jsDateString renders t the way Javascript's Date.toString() does for UTC,
// which is the timestamp format the service was built against.
func jsDateString(t time.Time) string {
	return t.UTC().Format("Mon Jan 02 2006 15:04:05") + " GMT+0000 (Coordinated Universal Time)"
}
