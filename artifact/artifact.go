// Package artifact implements the get-or-create pipeline for derived
// article artifacts: dialogue, narrative, highlight, daily keywords and
// political-bias labels.
//
// Each entry point follows the same state machine: check the store for an
// existing artifact, return it on a hit, otherwise perform exactly one
// generation call, persist best-effort and return the generated value. A
// singleflight group keyed by kind and article (or date, for keywords)
// collapses concurrent first requests into a single generation call; the
// store's uniqueness constraints remain the backstop across processes.
//
// Generation and parse failures propagate to the caller. Persist failures
// are logged and absorbed: the caller still receives the generated artifact,
// it just was not cached.
package artifact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hcinews/newslens/genai"
	"github.com/hcinews/newslens/observability"
	"github.com/hcinews/newslens/store"
)

// ErrNotFound is returned when the requested article does not exist.
var ErrNotFound = errors.New("artifact: article not found")

// ErrNoArticles is returned by DailyKeywords when no article titles are
// available in the configured window.
var ErrNoArticles = errors.New("artifact: no article titles available")

// biasGenre is the only genre the bias flow applies to. Articles of any
// other genre short-circuit to the not-applicable sentinel.
const biasGenre = "정치"

// Config tunes the generation service.
type Config struct {
	// Model is the generator model identifier passed on every call.
	Model string

	// KeywordWindow bounds how far back DailyKeywords reads article titles.
	// Zero means all known titles.
	KeywordWindow time.Duration

	// VerifyHighlights checks at write time that stripping highlight markers
	// from the generated artifact reproduces the article body. Mismatches
	// are logged, not rejected.
	VerifyHighlights bool
}

// Service is the artifact orchestrator. Safe for concurrent use.
type Service struct {
	store  *store.Store
	client *genai.Client
	cfg    Config
	logger *slog.Logger
	group  singleflight.Group
	events *observability.EventLogger

	now func() time.Time
}

// NewService wires the store and a generator into an orchestrator.
func NewService(st *store.Store, gen genai.Generator, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  st,
		client: genai.NewClient(gen, cfg.Model, logger),
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// getArticle loads an article or reports ErrNotFound.
func (s *Service) getArticle(ctx context.Context, id string) (*store.Article, error) {
	art, err := s.store.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, ErrNotFound
	}
	return art, nil
}

// SetEventLogger enables generation event recording. Optional; nil disables.
func (s *Service) SetEventLogger(l *observability.EventLogger) { s.events = l }

// recordGeneration logs one generation attempt. start is taken just before
// the generator call.
func (s *Service) recordGeneration(ctx context.Context, kind, key string, start time.Time, err error) {
	if s.events == nil {
		return
	}
	ev := observability.GenerationEvent{
		Kind:     kind,
		Key:      key,
		Model:    s.cfg.Model,
		Duration: time.Since(start),
		Success:  err == nil,
	}
	if err != nil {
		ev.Error = err.Error()
	}
	s.events.LogGeneration(ctx, ev)
}

func (s *Service) absorbPersist(kind, key string, err error) {
	if err != nil {
		s.logger.Warn("artifact persist failed, returning unsaved result",
			"kind", kind, "key", key, "error", err)
	}
}
