// Package genai talks to the external text generator and turns its
// semi-structured output into typed artifact records.
//
// The package is persistence-free: a Client builds the kind-specific prompt,
// performs exactly one completion call, strips code fences from the raw
// response (Extract) and parses it into typed records. Storage is the
// orchestrator's job (see package artifact).
package genai

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Chat roles understood by every Generator implementation.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one role-tagged message of a completion request.
type Message struct {
	Role    string
	Content string
}

// Generator performs a single synchronous completion call against the
// external text-generation service.
type Generator interface {
	Complete(ctx context.Context, model string, messages []Message) (string, error)
}

// ErrEmptyGeneration is returned when the generator produced no usable text.
var ErrEmptyGeneration = errors.New("genai: generator returned no content")

// ErrMalformedResponse is returned when generator text cannot be parsed into
// the expected shape. Match with errors.Is; the concrete *ParseError carries
// the offending raw text.
var ErrMalformedResponse = errors.New("genai: malformed generator response")

// ParseError describes a generator response that failed structural parsing.
// Raw holds the extracted payload for diagnosis.
type ParseError struct {
	Kind   string
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("genai: malformed %s response: %s", e.Kind, e.Reason)
}

func (e *ParseError) Is(target error) bool { return target == ErrMalformedResponse }

// DialogueLine is one line of the conversational retelling, in generation order.
type DialogueLine struct {
	Position  int
	SpeakerID int
	Speaker   string
	Content   string
}

// Narrative is the analogized retelling plus its analogy-term → real-term
// dictionary.
type Narrative struct {
	Story      string
	Dictionary map[string]string
}

// Keyword is one keyword of the daily summary with its importance (1..5).
type Keyword struct {
	Keyword string
	Score   int
}

// Bias holds the two political-bias labels for a politics article.
type Bias struct {
	MediaBias     string
	ReportingBias string
}

// NewGeneratorFromEnv picks a Generator from the environment: Cohere when
// COHERE_API_KEY is set, otherwise an OpenAI-compatible endpoint using
// API_KEY (and optional GENERATOR_ENDPOINT). Returns nil when neither key is
// configured.
func NewGeneratorFromEnv() Generator {
	if key := os.Getenv("COHERE_API_KEY"); key != "" {
		return NewCohereClient(key, nil)
	}
	if key := os.Getenv("API_KEY"); key != "" {
		return NewOpenAIClient(os.Getenv("GENERATOR_ENDPOINT"), key, nil)
	}
	return nil
}
