package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/feral-file/ai-company/internal/adapter"
	"github.com/feral-file/ai-company/internal/config"
	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/ratelimit"
)

const (
	ProviderASIOne    = "asione"
	ProviderAnthropic = "anthropic"
)

// Request is a single-turn text generation request
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Usage reports token consumption when the provider returns it
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Response is the generated text
type Response struct {
	Text  string
	Model string
	Usage Usage
}

// Provider generates text from a prompt
//
//go:generate mockgen -source=llm.go -destination=../mocks/llm.go -package=mocks -mock_names=Provider=MockLLMProvider
type Provider interface {
	// Name returns the provider identifier used for rate limiting and logs
	Name() string

	// Complete sends the prompt and returns the first text completion
	Complete(ctx context.Context, req Request) (*Response, error)
}

// New creates the provider selected by cfg.Provider
func New(cfg config.LLMConfig, httpClient adapter.HTTPClient, limiter ratelimit.Proxy) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm api key is required")
	}

	switch strings.ToLower(cfg.Provider) {
	case "", ProviderASIOne:
		return NewASIOne(cfg.APIKey, cfg.BaseURL, cfg.Model, httpClient, limiter), nil
	case ProviderAnthropic:
		return NewAnthropic(cfg.APIKey, cfg.BaseURL, cfg.Model, httpClient, limiter), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}

// upstreamError wraps a transport or API failure, keeping the upstream message
func upstreamError(provider string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrLLMUnavailable, provider, err)
}

func bearer(apiKey string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+apiKey)
	return h
}
