package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/umputun/uselessfacts/pkg/config"
)

// chatClient wraps an OpenAI-compatible client with pacing and metrics,
// shared by the entity extractor and the fact writer
type chatClient struct {
	client  *openai.Client
	cfg     config.LLMConfig
	limiter *rate.Limiter
}

func newChatClient(cfg config.LLMConfig) *chatClient {
	return &chatClient{
		client:  newOpenAIClient(cfg.Endpoint, cfg.APIKey, cfg.Timeout),
		cfg:     cfg,
		limiter: newLimiter(cfg.RequestsPerMinute),
	}
}

// newOpenAIClient makes a client for endpoint, empty endpoint keeps the OpenAI default
func newOpenAIClient(endpoint, apiKey string, timeout time.Duration) *openai.Client {
	clientConfig := openai.DefaultConfig(apiKey)
	if endpoint != "" {
		clientConfig.BaseURL = endpoint
	}
	if timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: timeout}
	}
	return openai.NewClientWithConfig(clientConfig)
}

// newLimiter returns a limiter allowing rpm requests per minute, non-positive rpm disables pacing
func newLimiter(rpm int) *rate.Limiter {
	if rpm <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
}

// complete sends system and user messages and returns the first choice content
func (c *chatClient) complete(ctx context.Context, kind, system, prompt string, jsonMode bool) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: float32(c.cfg.Temperature),
		MaxTokens:   c.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	observe(kind, c.cfg.Model, start, err)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	recordTokens(kind, c.cfg.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, nil
}
