package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/hyperjump/nukigaki/internal/models"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Documents) == 0 || req.Persona == "" || req.Job == "" {
		s.respondError(w, http.StatusBadRequest, "documents, persona, and job are required")
		return
	}
	s.logger.Debug("analyze request",
		zap.Int("documents", len(req.Documents)),
		zap.String("persona", req.Persona),
	)
	analysis, err := s.pipeline.Analyze(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrNoText) {
			// The empty-corpus case keeps its exact contract shape.
			s.respondJSON(w, http.StatusUnprocessableEntity, models.ErrorResult{Error: models.NoTextMessage})
			return
		}
		s.logger.Error("analysis failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encoding failed", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
