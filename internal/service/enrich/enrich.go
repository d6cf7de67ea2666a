// Package enrich optionally rewrites heuristic task titles and descriptions
// through an OpenAI-compatible chat-completions provider.
package enrich

import "context"

// SystemPrompt frames every rewrite request.
const SystemPrompt = "You generate realistic Asana task titles and descriptions for an enterprise B2B SaaS company. Keep it concise and realistic."

// Request is one heuristic title and description to rewrite.
type Request struct {
	System      string
	Title       string
	Description *string
	ProjectName string
}

// Text is a title and optional description.
type Text struct {
	Title       string
	Description *string
}

// Fallback returns the heuristic text of the request.
func (r Request) Fallback() Text {
	return Text{Title: r.Title, Description: r.Description}
}

// Enricher rewrites task text. Implementations never fail: any problem
// yields the request's own text.
type Enricher interface {
	Rewrite(ctx context.Context, req Request) Text
}

// Disabled returns every request unchanged.
type Disabled struct{}

// Rewrite implements Enricher.
func (Disabled) Rewrite(_ context.Context, req Request) Text {
	return req.Fallback()
}

// Outcomes reported to an Observer.
const (
	OutcomeHit       = "cache_hit"
	OutcomeCompleted = "completed"
	OutcomeError     = "error"
	OutcomeMalformed = "malformed"
	OutcomeExhausted = "budget_exhausted"
)

// Observer is told the outcome of every rewrite attempt.
type Observer interface {
	ObserveEnrichment(outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveEnrichment(string) {}
