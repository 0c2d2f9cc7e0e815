package httpapi

import (
	"net/http"
	"strconv"
	"strings"
)

type listVoicesResponse struct {
	DefaultVoice string `json:"default_voice"`
	Count        int    `json:"count"`
	Voices       any    `json:"voices"`
}

func (s *Server) handleListVoices(w http.ResponseWriter, r *http.Request) {
	locale := strings.TrimSpace(r.URL.Query().Get("locale"))
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	list, err := s.catalog.List(r.Context(), locale, limit)
	if err != nil {
		s.metrics.VoiceListRequests.WithLabelValues("error").Inc()
		respondError(w, http.StatusBadGateway, "voice_list_failed", err.Error())
		return
	}

	s.metrics.VoiceListRequests.WithLabelValues("ok").Inc()
	respondJSON(w, http.StatusOK, listVoicesResponse{
		DefaultVoice: s.cfg.DefaultVoice,
		Count:        len(list),
		Voices:       list,
	})
}
