// Package httpapi exposes the spell corrector over JSON/HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"telspell/internal/corrector"
	"telspell/internal/lexicon"
)

const maxBodyBytes = 1 << 20

// Corrector is the part of *corrector.SpellCorrector the API serves.
type Corrector interface {
	CorrectText(text string) corrector.CorrectionResult
	Suggest(word string) []corrector.Candidate
	IsValid(word string) bool
	AddCustomWord(ctx context.Context, word string) error
	RemoveCustomWord(ctx context.Context, word string) error
	Model() *lexicon.Model
}

type Server struct {
	sc     Corrector
	logger *slog.Logger
}

func New(sc Corrector, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{sc: sc, logger: logger}
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/correct", instrument("correct", s.handleCorrect))
	mux.HandleFunc("/api/v1/suggest", instrument("suggest", s.handleSuggest))
	mux.HandleFunc("/api/v1/custom-word", instrument("custom_word_add", s.handleAddWord))
	mux.HandleFunc("/api/v1/custom-word/", instrument("custom_word_remove", s.handleRemoveWord))
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

type correctResponse struct {
	Original    string                           `json:"original"`
	Corrected   string                           `json:"corrected"`
	Suggestions map[int]corrector.SuggestionInfo `json:"suggestions"`
}

func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := decode(w, r, &req); err != nil || strings.TrimSpace(req.Text) == "" {
		s.writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	start := time.Now()
	res := s.sc.CorrectText(req.Text)
	correctionDuration.Observe(time.Since(start).Seconds())
	tokensChecked.Add(float64(len(res.Tokens)))
	tokensMisspelled.Add(float64(len(res.Suggestions)))

	s.writeJSON(w, http.StatusOK, correctResponse{
		Original:    res.Original,
		Corrected:   res.Corrected,
		Suggestions: res.Suggestions,
	})
}

type suggestResponse struct {
	Word       string                `json:"word"`
	Valid      bool                  `json:"valid"`
	Candidates []corrector.Candidate `json:"candidates"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := decode(w, r, &req); err != nil || strings.TrimSpace(req.Word) == "" {
		s.writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	s.writeJSON(w, http.StatusOK, suggestResponse{
		Word:       req.Word,
		Valid:      s.sc.IsValid(req.Word),
		Candidates: s.sc.Suggest(req.Word),
	})
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := s.sc.AddCustomWord(r.Context(), req.Word); err != nil {
		s.writeWordError(w, err)
		return
	}
	s.logger.Info("custom word added", "word", req.Word)
	s.writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *Server) handleRemoveWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
	if err := s.sc.RemoveCustomWord(r.Context(), word); err != nil {
		s.writeWordError(w, err)
		return
	}
	s.logger.Info("custom word removed", "word", word)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type healthStatus struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthStatus{Status: "ok", Words: s.sc.Model().Len()})
}

func (s *Server) writeWordError(w http.ResponseWriter, err error) {
	if errors.Is(err, corrector.ErrEmptyWord) {
		s.writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	s.logger.Error("custom dictionary update failed", "err", err)
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}
