package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/umputun/uselessfacts/pkg/config"
	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/topic"
)

// errBadJSON marks responses worth asking again for
var errBadJSON = errors.New("invalid json in llm response")

// EntityExtractor uses LLM to pull named entities out of article text
type EntityExtractor struct {
	llm       *chatClient
	cfg       config.EntityConfig
	systemMsg string
}

// NewEntityExtractor creates a new LLM entity extractor
func NewEntityExtractor(cfg config.LLMConfig) *EntityExtractor {
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultEntityPrompt
	}
	return &EntityExtractor{llm: newChatClient(cfg), cfg: cfg.Entities, systemMsg: systemMsg}
}

const defaultEntityPrompt = `You extract named entities and key concepts from news articles.
Return the most salient entities only, each with:
- text: the entity as written in the article, without articles or punctuation (e.g. "OpenAI", "James Webb Space Telescope")
- type: one of PERSON, ORGANIZATION, LOCATION, TECHNOLOGY, EVENT, CONCEPT
- weight: importance of the entity for this article from 0 to 1, similar to a TF-IDF score
- confidence: how sure you are this is a real entity of that type, from 0 to 1

Prefer specific entities over generic words. Never return more entities than asked.`

type entity struct {
	Text       string  `json:"text"`
	Type       string  `json:"type"`
	Weight     float64 `json:"weight"`
	Confidence float64 `json:"confidence"`
}

// Extract returns article topics for the given title and text, without article ids
func (x *EntityExtractor) Extract(ctx context.Context, title, text string) ([]domain.ArticleTopic, error) {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(text) == "" {
		return []domain.ArticleTopic{}, nil
	}
	prompt := x.buildPrompt(title, text)

	// retry up to 3 times if we get invalid JSON
	var lastErr error
	for range 3 {
		content, err := x.llm.complete(ctx, kindEntities, x.systemMsg, prompt, x.cfg.UseJSONMode)
		if err != nil {
			return nil, err
		}
		entities, err := x.parseResponse(content)
		if err == nil {
			return x.toTopics(entities), nil
		}
		lastErr = err
		if !errors.Is(err, errBadJSON) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

func (x *EntityExtractor) buildPrompt(title, text string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extract up to %d entities from this article.\n\n", x.cfg.MaxEntities))
	sb.WriteString(fmt.Sprintf("Title: %s\n", title))
	if text != "" {
		if r := []rune(text); x.cfg.MaxChars > 0 && len(r) > x.cfg.MaxChars {
			text = string(r[:x.cfg.MaxChars]) + "..."
		}
		sb.WriteString(fmt.Sprintf("Content: %s\n", text))
	}
	sb.WriteString("\n")
	if x.cfg.UseJSONMode {
		sb.WriteString("Respond with a JSON object containing an 'entities' array of entity objects.")
	} else {
		sb.WriteString("Respond with a JSON array of entity objects.")
	}
	return sb.String()
}

func (x *EntityExtractor) parseResponse(content string) ([]entity, error) {
	if x.cfg.UseJSONMode {
		var resp struct {
			Entities []entity `json:"entities"`
		}
		if err := json.Unmarshal([]byte(content), &resp); err != nil {
			return nil, fmt.Errorf("%w: %w", errBadJSON, err)
		}
		return resp.Entities, nil
	}

	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("%w: no json array found", errBadJSON)
	}
	var entities []entity
	if err := json.Unmarshal([]byte(content[start:end+1]), &entities); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadJSON, err)
	}
	return entities, nil
}

// toTopics clamps scores, drops low confidence and duplicate entities, and caps the result.
// Duplicates share a match key, the one with the highest weight wins.
func (x *EntityExtractor) toTopics(entities []entity) []domain.ArticleTopic {
	byKey := make(map[string]int)
	res := make([]domain.ArticleTopic, 0, len(entities))
	for _, e := range entities {
		text := strings.TrimSpace(e.Text)
		key := topic.NormalizeMatchKey(text)
		if key == "" {
			continue
		}
		conf := clamp01(e.Confidence)
		if conf < x.cfg.MinConfidence {
			continue
		}
		t := domain.ArticleTopic{EntityText: text, EntityType: entityType(e.Type), TFIDFScore: clamp01(e.Weight), NERConfidence: conf}
		if i, ok := byKey[key]; ok {
			if t.TFIDFScore > res[i].TFIDFScore {
				res[i] = t
			}
			continue
		}
		byKey[key] = len(res)
		res = append(res, t)
	}

	slices.SortStableFunc(res, func(a, b domain.ArticleTopic) int {
		switch {
		case a.TFIDFScore > b.TFIDFScore:
			return -1
		case a.TFIDFScore < b.TFIDFScore:
			return 1
		}
		return 0
	})
	if x.cfg.MaxEntities > 0 && len(res) > x.cfg.MaxEntities {
		res = res[:x.cfg.MaxEntities]
	}
	return res
}

// entityType maps free-form types to the known set, unknown types become CONCEPT
func entityType(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "ORG":
		return domain.EntityOrganization
	case "LOC", "GPE", "PLACE":
		return domain.EntityLocation
	case "PER":
		return domain.EntityPerson
	case "TECH", "PRODUCT":
		return domain.EntityTechnology
	}
	if slices.Contains(domain.EntityTypes, s) {
		return s
	}
	return domain.EntityConcept
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
