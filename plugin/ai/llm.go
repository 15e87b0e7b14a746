package ai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"
)

// completionTimeout bounds a single chat completion round trip.
const completionTimeout = 60 * time.Second

// LLMService generates chat completions.
type LLMService interface {
	// Complete sends a system prompt plus one user message and returns
	// the raw assistant text.
	Complete(ctx context.Context, system string, user string) (string, error)
}

// UsageRecorder receives token usage after each successful completion.
type UsageRecorder interface {
	RecordCompletion(model string, promptTokens, completionTokens int, latency time.Duration)
}

// OpenAILLMService talks to any OpenAI-compatible chat completion
// endpoint, which covers Gemini, OpenAI and Ollama deployments.
type OpenAILLMService struct {
	client   *openai.Client
	config   LLMConfig
	recorder UsageRecorder
}

// NewOpenAILLMService creates an LLM service from config.
func NewOpenAILLMService(cfg LLMConfig) *OpenAILLMService {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAILLMService{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// SetUsageRecorder installs a token usage sink. Pass nil to disable.
func (s *OpenAILLMService) SetUsageRecorder(recorder UsageRecorder) {
	s.recorder = recorder
}

func (s *OpenAILLMService) Complete(ctx context.Context, system string, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       s.config.Model,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
	}

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, req)
	latency := time.Since(start)

	if err != nil {
		slog.Error("LLM completion request failed",
			"model", s.config.Model,
			"error", err,
			"latency_ms", latency.Milliseconds())
		return "", fmt.Errorf("LLM request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from LLM")
	}

	slog.Debug("LLM completion finished",
		"model", s.config.Model,
		"latency_ms", latency.Milliseconds(),
		"tokens", resp.Usage.TotalTokens)

	if s.recorder != nil {
		s.recorder.RecordCompletion(s.config.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens, latency)
	}

	return resp.Choices[0].Message.Content, nil
}
