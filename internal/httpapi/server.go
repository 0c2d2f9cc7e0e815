package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/antoniostano/nightingale/internal/config"
	"github.com/antoniostano/nightingale/internal/observability"
	"github.com/antoniostano/nightingale/internal/tts"
	"github.com/antoniostano/nightingale/internal/voices"
)

// Synthesizer runs one complete synthesis per call.
type Synthesizer interface {
	Synthesize(ctx context.Context, req tts.Request) (tts.Result, error)
}

// VoiceCatalog lists the service's published voices.
type VoiceCatalog interface {
	List(ctx context.Context, locale string, limit int) ([]voices.Voice, error)
}

type Server struct {
	cfg     config.Config
	synth   Synthesizer
	catalog VoiceCatalog
	metrics *observability.Metrics
}

func New(cfg config.Config, synth Synthesizer, catalog VoiceCatalog, metrics *observability.Metrics) *Server {
	return &Server{
		cfg:     cfg,
		synth:   synth,
		catalog: catalog,
		metrics: metrics,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		observability.MetricsHandler().ServeHTTP(w, r)
	})

	r.Get("/v1/voices", s.handleListVoices)
	r.Post("/v1/tts/synthesize", s.handleSynthesize)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"status": "ready"})
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var errEmptyBody = errors.New("empty body")

func decodeJSON(r *http.Request, out any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(out); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "eof") {
			return errEmptyBody
		}
		return err
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: message, Code: code})
}
