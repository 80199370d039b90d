package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/umputun/uselessfacts/pkg/config"
)

// Embedder turns text into vectors with an OpenAI-compatible embeddings endpoint
type Embedder struct {
	client     *openai.Client
	model      string
	dimensions int
	limiter    *rate.Limiter
}

// NewEmbedder creates an embedder, rpm paces requests the same way chat calls are paced
func NewEmbedder(cfg config.EmbeddingConfig, rpm int) *Embedder {
	return &Embedder{
		client:     newOpenAIClient(cfg.Endpoint, cfg.APIKey, cfg.Timeout),
		model:      cfg.Model,
		dimensions: cfg.Dimensions,
		limiter:    newLimiter(rpm),
	}
}

// Embed returns the embedding of text. Results are never cached.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty text")
	}
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      openai.EmbeddingModel(e.model),
		Dimensions: e.dimensions,
	})
	observe(kindEmbedding, e.model, start, err)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("no embedding in response")
	}
	recordTokens(kindEmbedding, e.model, resp.Usage.PromptTokens, 0)
	return resp.Data[0].Embedding, nil
}
