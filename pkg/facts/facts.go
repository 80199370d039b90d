// Package facts writes short facts about topics from matching articles and keeps their ratings.
package facts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/uselessfacts/pkg/content"
	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/search"
	"github.com/umputun/uselessfacts/pkg/topic"
)

//go:generate moq -out mocks/searcher.go -pkg mocks -skip-ensure -fmt goimports . Searcher
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/writer.go -pkg mocks -skip-ensure -fmt goimports . Writer

// SourceLimit is the number of article snippets a fact is written from
const SourceLimit = 5

var (
	// ErrNoTopics is returned when a request has no usable topic
	ErrNoTopics = errors.New("no topics given")
	// ErrNoSources is returned when no article matches the topics on any tier
	ErrNoSources = errors.New("no source articles found")
)

// Searcher finds source articles
type Searcher interface {
	FindArticlesByTopicsWithRelevance(ctx context.Context, topics []string, opts domain.MatchOptions) []domain.ArticleWithRelevance
	FindArticlesByTopicsFuzzy(ctx context.Context, topics []string, opts domain.MatchOptions) []domain.TopicMatch
	SearchArticlesByText(ctx context.Context, query string, opts domain.TextOptions) search.Result
}

// Store persists facts
type Store interface {
	CreateFact(ctx context.Context, fact *domain.Fact) error
	GetFact(ctx context.Context, id string) (*domain.Fact, error)
	ListFacts(ctx context.Context, limit, offset int) ([]domain.Fact, error)
	RateFact(ctx context.Context, id string, vote domain.Vote) (*domain.Fact, error)
}

// Writer writes a fact from snippets
type Writer interface {
	WriteFact(ctx context.Context, topics, snippets []string) (string, error)
}

// Service generates, stores and rates facts
type Service struct {
	searcher Searcher
	store    Store
	writer   Writer
	newID    func() string
}

// NewService creates a facts service
func NewService(searcher Searcher, store Store, writer Writer) *Service {
	return &Service{searcher: searcher, store: store, writer: writer, newID: uuid.NewString}
}

type source struct {
	id      int64
	snippet string
}

// Realtime writes and stores a new fact about topics. Sources come from the first tier that finds
// anything: weighted topic match, fuzzy topic match, then semantic search over the joined topics.
func (s *Service) Realtime(ctx context.Context, topics []string, window *int) (*domain.Fact, error) {
	topics = cleanTopics(topics)
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}

	sources, tier := s.findSources(ctx, topics, window)
	if len(sources) == 0 {
		return nil, fmt.Errorf("topics %v: %w", topics, ErrNoSources)
	}
	lgr.Printf("[DEBUG] writing fact about %v from %d %s sources", topics, len(sources), tier)

	snippets := make([]string, 0, len(sources))
	ids := make([]int64, 0, len(sources))
	for _, src := range sources {
		snippets = append(snippets, src.snippet)
		ids = append(ids, src.id)
	}

	text, err := s.writer.WriteFact(ctx, topics, snippets)
	if err != nil {
		return nil, fmt.Errorf("write fact: %w", err)
	}

	fact := &domain.Fact{ID: s.newID(), Text: text, Topics: topics, SourceArticleIDs: ids}
	if err := s.store.CreateFact(ctx, fact); err != nil {
		return nil, fmt.Errorf("store fact: %w", err)
	}
	return fact, nil
}

func (s *Service) findSources(ctx context.Context, topics []string, window *int) ([]source, search.Strategy) {
	opts := domain.MatchOptions{MatchType: domain.MatchAny, Limit: SourceLimit, TimeWindow: window}

	if res := s.searcher.FindArticlesByTopicsWithRelevance(ctx, topics, opts); len(res) > 0 {
		return fromRelevance(res), search.StrategyAny
	}

	if matches := s.searcher.FindArticlesByTopicsFuzzy(ctx, topics, opts); len(matches) > 0 {
		res := make([]source, 0, min(len(matches), SourceLimit))
		for _, m := range matches[:min(len(matches), SourceLimit)] {
			res = append(res, source{id: m.ID, snippet: snippetOf(m.Article)})
		}
		return res, search.StrategyFuzzy
	}

	text := s.searcher.SearchArticlesByText(ctx, strings.Join(topics, " "), domain.TextOptions{TimeWindow: window, Limit: SourceLimit})
	return fromRelevance(text.Articles), search.StrategySemantic
}

func fromRelevance(articles []domain.ArticleWithRelevance) []source {
	res := make([]source, 0, min(len(articles), SourceLimit))
	for _, a := range articles[:min(len(articles), SourceLimit)] {
		snippet := a.Snippet
		if snippet == "" {
			snippet = snippetOf(a.Article)
		}
		res = append(res, source{id: a.ID, snippet: snippet})
	}
	return res
}

// snippetOf is the title followed by the start of the content
func snippetOf(a domain.Article) string {
	snippet := content.Snippet(a.Content, content.SnippetLength)
	if a.Title == "" {
		return snippet
	}
	if snippet == "" {
		return a.Title
	}
	return a.Title + ": " + snippet
}

// cleanTopics trims topics and drops empty ones and repeats of the same match key
func cleanTopics(topics []string) []string {
	seen := make(map[string]bool, len(topics))
	res := make([]string, 0, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		key := topic.NormalizeMatchKey(t)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, t)
	}
	return res
}

// List returns facts, newest first
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Fact, error) {
	facts, err := s.store.ListFacts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list facts: %w", err)
	}
	return facts, nil
}

// Get returns a fact by id, wraps domain.ErrNotFound when missing
func (s *Service) Get(ctx context.Context, id string) (*domain.Fact, error) {
	return s.store.GetFact(ctx, id)
}

// Rate records a vote for a fact and returns the updated fact
func (s *Service) Rate(ctx context.Context, id string, vote domain.Vote) (*domain.Fact, error) {
	v, err := domain.ParseVote(string(vote))
	if err != nil {
		return nil, err
	}
	return s.store.RateFact(ctx, id, v)
}
