package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/feral-file/ai-company/internal/adapter"
	"github.com/feral-file/ai-company/internal/ratelimit"
)

const (
	DefaultASIOneBaseURL = "https://api.asi1.ai/v1"
	DefaultASIOneModel   = "asi1-mini"
)

// ChatMessage is an OpenAI-compatible chat message
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is an OpenAI-compatible chat completion request
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

// Choice is one completion alternative
type Choice struct {
	Index        int         `json:"index"`
	FinishReason string      `json:"finish_reason"`
	Message      ChatMessage `json:"message"`
}

// ChatCompletionResponse is an OpenAI-compatible chat completion response
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage,omitempty"`
}

// ASIOne talks to the ASI:One OpenAI-compatible chat completions endpoint
type ASIOne struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient adapter.HTTPClient
	limiter    ratelimit.Proxy
}

// NewASIOne creates a new ASI:One provider
func NewASIOne(apiKey, baseURL, model string, httpClient adapter.HTTPClient, limiter ratelimit.Proxy) *ASIOne {
	if baseURL == "" {
		baseURL = DefaultASIOneBaseURL
	}
	if model == "" {
		model = DefaultASIOneModel
	}
	return &ASIOne{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: httpClient,
		limiter:    limiter,
	}
}

func (a *ASIOne) Name() string {
	return ProviderASIOne
}

func (a *ASIOne) Complete(ctx context.Context, req Request) (*Response, error) {
	messages := make([]ChatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: req.Prompt})

	body := ChatCompletionRequest{
		Model:     a.model,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	}

	raw, err := ratelimit.Request(ctx, a.limiter, a.Name(), func(ctx context.Context) ([]byte, error) {
		return a.httpClient.PostJSON(ctx, a.baseURL+"/chat/completions", bearer(a.apiKey), body)
	})
	if err != nil {
		return nil, upstreamError(a.Name(), err)
	}

	var resp ChatCompletionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, upstreamError(a.Name(), fmt.Errorf("failed to decode response: %w", err))
	}
	if len(resp.Choices) == 0 {
		return nil, upstreamError(a.Name(), fmt.Errorf("response contained no choices"))
	}

	out := &Response{
		Text:  resp.Choices[0].Message.Content,
		Model: resp.Model,
	}
	if resp.Usage != nil {
		out.Usage = Usage{InputTokens: resp.Usage.PromptTokens, OutputTokens: resp.Usage.CompletionTokens}
	}
	return out, nil
}
