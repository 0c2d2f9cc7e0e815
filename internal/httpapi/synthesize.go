package httpapi

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/antoniostano/nightingale/internal/tts"
)

type synthesizeRequest struct {
	Text       string `json:"text"`
	Voice      string `json:"voice,omitempty"`
	Rate       string `json:"rate,omitempty"`
	Volume     string `json:"volume,omitempty"`
	Pitch      string `json:"pitch,omitempty"`
	WordsInCue int    `json:"words_in_cue,omitempty"`
}

type synthesizeResponse struct {
	AudioBase64       string `json:"audio_base64"`
	Format            string `json:"format"`
	WordSubtitles     string `json:"word_subtitles"`
	SentenceSubtitles string `json:"sentence_subtitles"`
}

func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req synthesizeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "text is required")
		return
	}
	if req.WordsInCue <= 0 {
		req.WordsInCue = s.cfg.WordsInCue
	}

	ctx := r.Context()
	if s.cfg.SynthesisTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SynthesisTimeout)
		defer cancel()
	}

	started := time.Now()
	result, err := s.synth.Synthesize(ctx, tts.Request{
		Text:       req.Text,
		Voice:      req.Voice,
		Rate:       req.Rate,
		Volume:     req.Volume,
		Pitch:      req.Pitch,
		WordsInCue: req.WordsInCue,
	})
	if err != nil {
		if errors.Is(err, tts.ErrInvalidParameter) {
			s.metrics.SynthesisRequests.WithLabelValues("invalid_parameter").Inc()
			respondError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
			return
		}
		s.metrics.SynthesisRequests.WithLabelValues("upstream_error").Inc()
		respondError(w, http.StatusBadGateway, "synthesis_failed", err.Error())
		return
	}

	s.metrics.SynthesisRequests.WithLabelValues("ok").Inc()
	s.metrics.ObserveSynthesisDuration(time.Since(started))
	s.metrics.AudioBytesOut.Add(float64(len(result.Audio)))
	s.metrics.StreamEvents.WithLabelValues("audio").Add(float64(result.Stats.AudioChunks))
	s.metrics.StreamEvents.WithLabelValues("word").Add(float64(result.Stats.WordBoundaries))
	s.metrics.StreamEvents.WithLabelValues("sentence").Add(float64(result.Stats.SentenceBoundaries))

	respondJSON(w, http.StatusOK, synthesizeResponse{
		AudioBase64:       base64.StdEncoding.EncodeToString(result.Audio),
		Format:            result.Format,
		WordSubtitles:     result.WordSubtitles,
		SentenceSubtitles: result.SentenceSubtitles,
	})
}
