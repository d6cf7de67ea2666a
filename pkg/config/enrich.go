package config

import (
	"fmt"
	"time"
)

// EnrichConfig holds settings for the optional text-enrichment provider.
type EnrichConfig struct {
	Enabled        bool
	APIKey         string
	Model          string
	BaseURL        string
	MaxCalls       int
	Timeout        time.Duration
	CacheRedisAddr string
	CacheRedisPass string
	CacheRedisDB   int
	CacheTTL       time.Duration
}

// LoadEnrichConfig constructs an EnrichConfig from environment variables.
func LoadEnrichConfig() EnrichConfig {
	return EnrichConfig{
		Enabled:        GetBool("USE_LLM_TEXT", false),
		APIKey:         GetString("GROQ_API_KEY", ""),
		Model:          GetString("GROQ_MODEL", "llama-3.1-70b-versatile"),
		BaseURL:        GetString("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		MaxCalls:       GetInt("GROQ_MAX_CALLS", 40),
		Timeout:        time.Duration(GetInt("GROQ_TIMEOUT_SECONDS", 30)) * time.Second,
		CacheRedisAddr: GetString("ENRICH_CACHE_REDIS_ADDR", ""),
		CacheRedisPass: GetString("ENRICH_CACHE_REDIS_PASSWORD", ""),
		CacheRedisDB:   GetInt("ENRICH_CACHE_REDIS_DB", 0),
		CacheTTL:       time.Duration(GetInt("ENRICH_CACHE_TTL_HOURS", 168)) * time.Hour,
	}
}

// Active reports whether enrichment was requested and has credentials.
func (c EnrichConfig) Active() bool {
	return c.Enabled && c.APIKey != "" && c.MaxCalls > 0
}

// Validate checks the provider settings only when enrichment is active.
func (c EnrichConfig) Validate() error {
	if !c.Active() {
		return nil
	}
	if c.Model == "" {
		return fmt.Errorf("%w: GROQ_MODEL is required when USE_LLM_TEXT is on", ErrInvalid)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("%w: GROQ_BASE_URL is required when USE_LLM_TEXT is on", ErrInvalid)
	}
	return nil
}
