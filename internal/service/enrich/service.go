package enrich

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/splax/worksim/pkg/config"
)

const (
	temperature = 0.7
	maxTokens   = 250
)

// Service rewrites text through a Completer. Only cache misses count
// against the call budget.
type Service struct {
	completer Completer
	cache     Cache
	model     string
	observer  Observer
	logger    *slog.Logger

	mu        sync.Mutex
	remaining int
}

// Option customises a Service.
type Option func(*Service)

// WithCache replaces the in-process cache.
func WithCache(c Cache) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithObserver reports rewrite outcomes to o.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.observer = o
		}
	}
}

// NewService returns a Service allowed maxCalls provider requests.
func NewService(completer Completer, model string, maxCalls int, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		completer: completer,
		cache:     NewMemoryCache(),
		model:     model,
		observer:  nopObserver{},
		logger:    logger,
		remaining: maxCalls,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Remaining reports how many provider calls the budget still allows.
func (s *Service) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Rewrite implements Enricher.
func (s *Service) Rewrite(ctx context.Context, req Request) Text {
	completion := Completion{
		Model:       s.model,
		System:      req.System,
		User:        userPrompt(req),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	if completion.System == "" {
		completion.System = SystemPrompt
	}
	key, err := Key(completion)
	if err != nil {
		s.logger.Debug("enrichment key failed", "error", err)
		s.observer.ObserveEnrichment(OutcomeError)
		return req.Fallback()
	}

	raw, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Debug("enrichment cache read failed", "error", err)
	}
	if hit {
		s.observer.ObserveEnrichment(OutcomeHit)
		return parse(raw, req)
	}

	if !s.take() {
		s.observer.ObserveEnrichment(OutcomeExhausted)
		return req.Fallback()
	}
	raw, err = s.completer.Complete(ctx, completion)
	if err != nil {
		s.logger.Debug("enrichment request failed", "error", err)
		s.observer.ObserveEnrichment(OutcomeError)
		return req.Fallback()
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.logger.Debug("enrichment cache write failed", "error", err)
	}
	text, ok := decode(raw, req)
	if !ok {
		s.observer.ObserveEnrichment(OutcomeMalformed)
		return req.Fallback()
	}
	s.observer.ObserveEnrichment(OutcomeCompleted)
	return text
}

func (s *Service) take() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.remaining <= 0 {
		return false
	}
	s.remaining--
	return true
}

func userPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\n", req.ProjectName)
	fmt.Fprintf(&b, "Base task title: %s\n\n", req.Title)
	b.WriteString("Return JSON with keys: title, description.\n")
	b.WriteString("Constraints:\n")
	b.WriteString("- Title: 4-12 words, no trailing period\n")
	b.WriteString("- Description: either empty, 1-3 sentences, or short bullets\n")
	b.WriteString("- Avoid generic placeholders like 'Task 1'\n")
	return b.String()
}

type payload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func parse(raw string, req Request) Text {
	text, ok := decode(raw, req)
	if !ok {
		return req.Fallback()
	}
	return text
}

// decode reads the provider's JSON answer. A missing title keeps the
// heuristic one and an empty description becomes nil.
func decode(raw string, req Request) (Text, bool) {
	var p payload
	if err := sonic.UnmarshalString(raw, &p); err != nil {
		return Text{}, false
	}
	title := req.Title
	if p.Title != nil && strings.TrimSpace(*p.Title) != "" {
		title = strings.TrimSpace(*p.Title)
	}
	var desc *string
	if p.Description != nil {
		if d := strings.TrimSpace(*p.Description); d != "" {
			desc = &d
		}
	}
	return Text{Title: title, Description: desc}, true
}

// FromConfig selects the Enricher for cfg. The returned closer releases any
// cache connection.
func FromConfig(cfg config.EnrichConfig, logger *slog.Logger, observer Observer) (Enricher, io.Closer, error) {
	if !cfg.Active() {
		return Disabled{}, nopCloser{}, nil
	}
	client, err := NewClient(cfg.BaseURL, cfg.APIKey, &http.Client{Timeout: cfg.Timeout})
	if err != nil {
		return nil, nil, fmt.Errorf("enrich client: %w", err)
	}
	opts := []Option{WithObserver(observer)}
	var closer io.Closer = nopCloser{}
	if cfg.CacheRedisAddr != "" {
		cache, err := NewRedisCache(cfg.CacheRedisAddr, cfg.CacheRedisPass, cfg.CacheRedisDB, cfg.CacheTTL)
		if err != nil {
			return nil, nil, fmt.Errorf("enrich cache: %w", err)
		}
		opts = append(opts, WithCache(cache))
		closer = cache
	}
	return NewService(client, cfg.Model, cfg.MaxCalls, logger, opts...), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
