package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/umputun/uselessfacts/pkg/config"
)

// FactWriter writes short trivia statements from article snippets
type FactWriter struct {
	llm       *chatClient
	systemMsg string
}

// NewFactWriter creates a new LLM fact writer
func NewFactWriter(cfg config.LLMConfig) *FactWriter {
	systemMsg := cfg.FactPrompt
	if systemMsg == "" {
		systemMsg = defaultFactPrompt
	}
	return &FactWriter{llm: newChatClient(cfg), systemMsg: systemMsg}
}

const defaultFactPrompt = `You write one surprising, true and mildly useless fact based only on the news snippets you are given.
Rules:
- one or two sentences, no more than 280 characters
- use only information present in the snippets, never invent numbers or names
- no introductions like "Did you know" or "According to the article"
- plain text, no markdown, no quotes around the fact`

// WriteFact returns a fact about topics grounded on snippets
func (w *FactWriter) WriteFact(ctx context.Context, topics, snippets []string) (string, error) {
	if len(snippets) == 0 {
		return "", fmt.Errorf("no snippets to write a fact from")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Topics: %s\n\nSnippets:\n", strings.Join(topics, ", ")))
	for i, s := range snippets {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, s))
	}
	sb.WriteString("\nWrite the fact.")

	content, err := w.llm.complete(ctx, kindFact, w.systemMsg, sb.String(), false)
	if err != nil {
		return "", err
	}
	fact := strings.Trim(strings.TrimSpace(content), "\"“”")
	if fact == "" {
		return "", fmt.Errorf("empty fact in llm response")
	}
	return fact, nil
}
