// Package web is the thin HTTP layer over the store and the artifact
// pipeline: request decoding, orchestrator calls and error-to-status
// mapping, nothing else.
package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hcinews/newslens/artifact"
	"github.com/hcinews/newslens/genai"
	"github.com/hcinews/newslens/store"
)

// Server holds the route handlers' dependencies.
type Server struct {
	store     *store.Store
	artifacts *artifact.Service
	logger    *slog.Logger
}

func NewServer(st *store.Store, artifacts *artifact.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: st, artifacts: artifacts, logger: logger}
}

// Router builds the chi router with all newslens routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/articles", s.handleArticlesPage)
		r.Get("/articles/genre/{genre}", s.handleArticlesByGenre)
		r.Get("/articles/{id}/view", s.handleArticleView)
		r.Get("/articles/{id}/highlight", s.handleHighlight)
		r.Get("/articles/{id}/bias", s.handleBias)
		r.Post("/keywords/today", s.handleKeywordsToday)
	})
	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("web: encode response", "error", err)
	}
}

// writeError maps pipeline errors onto HTTP statuses: missing entities are
// 404, generator trouble is 502 (the upstream failed, not us), everything
// else 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, artifact.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, genai.ErrEmptyGeneration),
		errors.Is(err, genai.ErrMalformedResponse),
		errors.Is(err, artifact.ErrNoArticles):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("web: request failed", "path", r.URL.Path, "error", err)
	}
	s.writeJSON(w, status, map[string]string{"detail": err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
