// Package qa composes a web lookup and a chat completion into one answer.
// It is the single point where downstream failures collapse into degraded
// answer strings: neither leaf error ever propagates past this package.
package qa

import (
	"context"
	"log"
	"strings"

	"github.com/scout-plus/scout-ai/src/ai/core"
	"github.com/scout-plus/scout-ai/src/search"
)

const (
	// MsgNotConfigured is returned verbatim when no provider key is set.
	MsgNotConfigured = "AI reasoning is not configured. Set an API key to enable generated answers."

	// MsgUnavailable is returned verbatim when the provider call fails.
	MsgUnavailable = "AI reasoning is temporarily unavailable. Please try again later."
)

// Result is the answer to a single question. It is built once per request
// and never mutated.
type Result struct {
	Question string `json:"question"`
	WebInfo  string `json:"web_info"`
	Answer   string `json:"answer"`
}

// Service answers Scouting questions. The search provider and AI client are
// injected so front-ends and tests choose their own wiring; a nil AI client
// means degraded mode.
type Service struct {
	search search.Provider
	client core.Client
	opts   core.Options
}

func New(provider search.Provider, client core.Client) *Service {
	return &Service{
		search: provider,
		client: client,
		opts: core.Options{
			Temperature:         0.3,
			MaxCompletionTokens: 400,
		},
	}
}

// Configured reports whether an AI provider is available.
func (s *Service) Configured() bool {
	return s.client != nil
}

// Answer runs the full flow for one validated, non-empty question:
// web lookup, then generation. The lookup always completes (or degrades to
// an empty summary) before the prompt is assembled.
func (s *Service) Answer(ctx context.Context, question string) Result {
	webInfo := ""
	if s.search != nil {
		v, err := s.search.Lookup(ctx, question)
		if err != nil {
			log.Printf("qa: web lookup failed: %v", err)
		} else {
			webInfo = v
		}
	}

	return Result{
		Question: question,
		WebInfo:  webInfo,
		Answer:   s.generate(ctx, question, webInfo),
	}
}

func (s *Service) generate(ctx context.Context, question, webInfo string) string {
	if s.client == nil {
		return MsgNotConfigured
	}

	answer, err := s.client.Complete(ctx, buildPrompt(question, webInfo), s.opts)
	if err != nil {
		log.Printf("qa: generation failed: %v", err)
		return MsgUnavailable
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return MsgUnavailable
	}
	return answer
}
