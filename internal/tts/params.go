package tts

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultVoice is used when the caller does not pick a voice.
const DefaultVoice = "Microsoft Server Speech Text to Speech Voice (en-US, AriaNeural)"

var (
	ratePattern      = regexp.MustCompile(`^[+-]\d+%$`)
	volumePattern    = regexp.MustCompile(`^[+-]\d+%$`)
	pitchPattern     = regexp.MustCompile(`^[+-]\d+Hz$`)
	shortVoiceForm   = regexp.MustCompile(`^([a-z]{2,})-([A-Z]{2,})-(.+Neural)$`)
	canonicalVoiceRE = regexp.MustCompile(`^Microsoft Server Speech Text to Speech Voice \(.+,.+\)$`)
)

// VoiceSpec is a validated, immutable set of voice and prosody parameters.
// Construction is the only place validation happens; a zero VoiceSpec is not
// usable.
type VoiceSpec struct {
	name   string
	rate   string
	volume string
	pitch  string
}

// NewVoiceSpec validates the given parameters and normalizes short-form
// voice names (e.g. "en-US-AriaNeural") into the canonical service form.
// Any parameter failing its grammar returns ErrInvalidParameter.
func NewVoiceSpec(name, rate, volume, pitch string) (VoiceSpec, error) {
	normalized, err := normalizeVoiceName(name)
	if err != nil {
		return VoiceSpec{}, err
	}
	if !ratePattern.MatchString(rate) {
		return VoiceSpec{}, fmt.Errorf("%w: invalid rate %q", ErrInvalidParameter, rate)
	}
	if !volumePattern.MatchString(volume) {
		return VoiceSpec{}, fmt.Errorf("%w: invalid volume %q", ErrInvalidParameter, volume)
	}
	if !pitchPattern.MatchString(pitch) {
		return VoiceSpec{}, fmt.Errorf("%w: invalid pitch %q", ErrInvalidParameter, pitch)
	}
	return VoiceSpec{name: normalized, rate: rate, volume: volume, pitch: pitch}, nil
}

func (v VoiceSpec) Name() string   { return v.name }
func (v VoiceSpec) Rate() string   { return v.rate }
func (v VoiceSpec) Volume() string { return v.volume }
func (v VoiceSpec) Pitch() string  { return v.pitch }

// normalizeVoiceName accepts either the canonical service voice name or the
// short "lang-REGION-NameNeural" form. A hyphen inside the short-form name
// part carries an extra region qualifier (e.g. "zh-CN-liaoning-XiaobeiNeural"
// becomes "(zh-CN-liaoning, XiaobeiNeural)").
func normalizeVoiceName(name string) (string, error) {
	if m := shortVoiceForm.FindStringSubmatch(name); m != nil {
		lang, region, voice := m[1], m[2], m[3]
		if idx := strings.Index(voice, "-"); idx != -1 {
			region = region + "-" + voice[:idx]
			voice = voice[idx+1:]
		}
		name = fmt.Sprintf("Microsoft Server Speech Text to Speech Voice (%s-%s, %s)", lang, region, voice)
	}
	if !canonicalVoiceRE.MatchString(name) {
		return "", fmt.Errorf("%w: invalid voice %q", ErrInvalidParameter, name)
	}
	return name, nil
}
