package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/feral-file/ai-company/internal/adapter"
	"github.com/feral-file/ai-company/internal/ratelimit"
)

const (
	DefaultAnthropicBaseURL = "https://api.anthropic.com"
	DefaultAnthropicModel   = "claude-3-5-sonnet-20241022"
	anthropicVersion        = "2023-06-01"
)

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Anthropic talks to the Anthropic messages API
type Anthropic struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient adapter.HTTPClient
	limiter    ratelimit.Proxy
}

// NewAnthropic creates a new Anthropic provider
func NewAnthropic(apiKey, baseURL, model string, httpClient adapter.HTTPClient, limiter ratelimit.Proxy) *Anthropic {
	if baseURL == "" {
		baseURL = DefaultAnthropicBaseURL
	}
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &Anthropic{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: httpClient,
		limiter:    limiter,
	}
}

func (a *Anthropic) Name() string {
	return ProviderAnthropic
}

func (a *Anthropic) Complete(ctx context.Context, req Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}

	body := anthropicRequest{
		Model:     a.model,
		MaxTokens: maxTokens,
		System:    req.System,
		Messages:  []anthropicMessage{{Role: "user", Content: req.Prompt}},
	}

	headers := http.Header{}
	headers.Set("x-api-key", a.apiKey)
	headers.Set("anthropic-version", anthropicVersion)

	raw, err := ratelimit.Request(ctx, a.limiter, a.Name(), func(ctx context.Context) ([]byte, error) {
		return a.httpClient.PostJSON(ctx, a.baseURL+"/v1/messages", headers, body)
	})
	if err != nil {
		return nil, upstreamError(a.Name(), err)
	}

	var resp anthropicResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, upstreamError(a.Name(), fmt.Errorf("failed to decode response: %w", err))
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, upstreamError(a.Name(), fmt.Errorf("response contained no text content"))
	}

	return &Response{
		Text:  text.String(),
		Model: resp.Model,
		Usage: Usage{InputTokens: resp.Usage.InputTokens, OutputTokens: resp.Usage.OutputTokens},
	}, nil
}
