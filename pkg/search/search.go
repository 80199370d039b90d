// Package search implements topic matching, the tiered fallback, fuzzy matching, text search by embeddings
// and topic listing. Storage and embedding failures are logged and turn into empty results.
package search

import (
	"context"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/uselessfacts/pkg/content"
	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/relevance"
	"github.com/umputun/uselessfacts/pkg/topic"
)

//go:generate moq -out mocks/topic_store.go -pkg mocks -skip-ensure -fmt goimports . TopicStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/embedder.go -pkg mocks -skip-ensure -fmt goimports . Embedder

// MinExactResults is the smallest all-topics result set accepted before falling back to any-topic matching
const MinExactResults = 3

// MinQueryLength is the minimal text search query length in runes
const MinQueryLength = 3

// MinSuggestLength is the minimal topic suggestion query length in runes
const MinSuggestLength = 2

// gamingPatterns widen fuzzy queries mentioning games
var gamingPatterns = []string{"game", "gaming", "video gaming"}

// Strategy names which path produced an article list
type Strategy string

// enum of search strategies reported to callers
const (
	StrategyAll      Strategy = "all"
	StrategyAny      Strategy = "any"
	StrategyFuzzy    Strategy = "fuzzy"
	StrategyRecent   Strategy = "recent"
	StrategySemantic Strategy = "semantic"
)

// TopicStore provides topic matching and topic aggregates
type TopicStore interface {
	FindByMatchKeys(ctx context.Context, keys []string, opts domain.MatchOptions) ([]domain.TopicMatch, error)
	FindByPatterns(ctx context.Context, patterns []string, opts domain.MatchOptions) ([]domain.TopicMatch, error)
	GetTrending(ctx context.Context, q domain.TopicQuery) ([]domain.TrendingTopic, error)
	SuggestTrending(ctx context.Context, key string, limit int) ([]domain.TrendingTopic, error)
	GetArticleTopicStats(ctx context.Context, q domain.TopicQuery) ([]domain.ArticleTopicStat, error)
}

// ArticleStore provides article lists not driven by topics
type ArticleStore interface {
	GetRecentArticles(ctx context.Context, window *int, limit int) ([]domain.Article, error)
	SearchByEmbedding(ctx context.Context, vec []float32, window *int, limit int) ([]domain.ArticleDistance, error)
}

// Embedder turns text into an embedding vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Service runs searches over the stores
type Service struct {
	topics   TopicStore
	articles ArticleStore
	embedder Embedder
	shuffle  func(n int, swap func(i, j int))
}

// Result is an annotated article list with the strategy that produced it
type Result struct {
	Articles []domain.ArticleWithRelevance
	Strategy Strategy
}

// TopicsRequest controls topic listing
type TopicsRequest struct {
	TimeWindow  int // hours
	Limit       int
	EntityTypes []string
	Diverse     bool
	Randomize   bool
}

// TopicsResult is a topic list with the aggregate it came from
type TopicsResult struct {
	Topics []domain.Topic
	Source domain.TopicSource
}

// NewService makes a search service
func NewService(topics TopicStore, articles ArticleStore, embedder Embedder) *Service {
	return &Service{topics: topics, articles: articles, embedder: embedder, shuffle: rand.Shuffle}
}

// FindArticlesByTopics matches articles against the topics by normalized match key. Empty topics give
// an empty result without touching storage.
func (s *Service) FindArticlesByTopics(ctx context.Context, topics []string, opts domain.MatchOptions) []domain.TopicMatch {
	keys := topic.NormalizeMatchKeys(topics)
	if len(keys) == 0 {
		return []domain.TopicMatch{}
	}
	if opts.MatchType == "" {
		opts.MatchType = domain.MatchAny
	}
	opts.EntityTypes = normalizeTypes(opts.EntityTypes)

	res, err := s.topics.FindByMatchKeys(ctx, keys, opts)
	if err != nil {
		lgr.Printf("[WARN] failed to match articles by topics %v (%s): %v", keys, opts.MatchType, err)
		return []domain.TopicMatch{}
	}
	return res
}

// GetArticlesByTopics runs the all-topics tier and falls back to any-topic matching when it returns
// fewer than MinExactResults articles
func (s *Service) GetArticlesByTopics(ctx context.Context, topics []string, opts domain.MatchOptions) ([]domain.TopicMatch, Strategy) {
	opts.MatchType = domain.MatchAll
	exact := s.FindArticlesByTopics(ctx, topics, opts)
	if len(exact) >= MinExactResults {
		return exact, StrategyAll
	}

	lgr.Printf("[DEBUG] %d articles matched all of %v, falling back to any", len(exact), topics)
	opts.MatchType = domain.MatchAny
	return s.FindArticlesByTopics(ctx, topics, opts), StrategyAny
}

// FindArticlesByTopicsFuzzy matches articles whose topics contain any of the topics as a substring
func (s *Service) FindArticlesByTopicsFuzzy(ctx context.Context, topics []string, opts domain.MatchOptions) []domain.TopicMatch {
	patterns := fuzzyPatterns(topics)
	if len(patterns) == 0 {
		return []domain.TopicMatch{}
	}
	opts.EntityTypes = normalizeTypes(opts.EntityTypes)

	res, err := s.topics.FindByPatterns(ctx, patterns, opts)
	if err != nil {
		lgr.Printf("[WARN] failed to fuzzy match articles by %v: %v", patterns, err)
		return []domain.TopicMatch{}
	}
	return res
}

// FindArticlesByTopicsWithRelevance matches any of the topics and scores results with relevance.TopicWeighted
func (s *Service) FindArticlesByTopicsWithRelevance(ctx context.Context, topics []string, opts domain.MatchOptions) []domain.ArticleWithRelevance {
	opts.MatchType = domain.MatchAny
	matches := s.FindArticlesByTopics(ctx, topics, opts)
	return annotate(matches, len(topic.NormalizeMatchKeys(topics)), relevance.TopicWeighted, opts.TimeWindow != nil)
}

// ArticlesByTopics is the article search path: tiered exact matching, fuzzy matching when nothing
// matched exactly, scored with relevance.TopicExact
func (s *Service) ArticlesByTopics(ctx context.Context, topics []string, opts domain.MatchOptions) Result {
	total := len(topic.NormalizeMatchKeys(topics))
	bounded := opts.TimeWindow != nil

	matches, strategy := s.GetArticlesByTopics(ctx, topics, opts)
	if len(matches) == 0 {
		matches, strategy = s.FindArticlesByTopicsFuzzy(ctx, topics, opts), StrategyFuzzy
	}
	return Result{Articles: annotate(matches, total, relevance.TopicExact, bounded), Strategy: strategy}
}

// SearchArticlesByText embeds the query and returns articles closest to it. Queries shorter than
// MinQueryLength give an empty result without calling the embedder.
func (s *Service) SearchArticlesByText(ctx context.Context, query string, opts domain.TextOptions) Result {
	res := Result{Articles: []domain.ArticleWithRelevance{}, Strategy: StrategySemantic}
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return res
	}

	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		lgr.Printf("[WARN] failed to embed query %q: %v", query, err)
		return res
	}

	hits, err := s.articles.SearchByEmbedding(ctx, vec, opts.TimeWindow, opts.Limit)
	if err != nil {
		lgr.Printf("[WARN] failed to search articles by embedding for %q: %v", query, err)
		return res
	}

	for i, h := range hits {
		dist := h.Distance
		res.Articles = append(res.Articles, domain.ArticleWithRelevance{
			Article:        h.Article,
			Snippet:        content.Snippet(h.Content, content.SnippetLength),
			RelevanceScore: relevance.Score(relevance.TextRank, relevance.Input{Rank: i, Total: len(hits)}),
			MatchedTopics:  []string{},
			Distance:       &dist,
		})
	}
	return res
}

// RecentArticles returns the latest articles without any matching
func (s *Service) RecentArticles(ctx context.Context, window *int, limit int) Result {
	res := Result{Articles: []domain.ArticleWithRelevance{}, Strategy: StrategyRecent}
	articles, err := s.articles.GetRecentArticles(ctx, window, limit)
	if err != nil {
		lgr.Printf("[WARN] failed to get recent articles: %v", err)
		return res
	}
	for _, a := range articles {
		res.Articles = append(res.Articles, domain.ArticleWithRelevance{
			Article:       a,
			Snippet:       content.Snippet(a.Content, content.SnippetLength),
			MatchedTopics: []string{},
		})
	}
	return res
}

// Topics lists topics from the trending aggregate, or from article topics when nothing is trending.
// With Diverse set a pool of three times the limit is reduced by topic.SelectDiverse, Randomize
// shuffles the pool first.
func (s *Service) Topics(ctx context.Context, req TopicsRequest) TopicsResult {
	pool := req.Limit
	if req.Diverse {
		pool = req.Limit * 3
	}
	q := domain.TopicQuery{TimeWindow: req.TimeWindow, Limit: pool, EntityTypes: normalizeTypes(req.EntityTypes)}

	res := TopicsResult{Topics: []domain.Topic{}, Source: domain.TopicSourceTrending}
	trending, err := s.topics.GetTrending(ctx, q)
	if err != nil {
		lgr.Printf("[WARN] failed to get trending topics: %v", err)
	}
	if len(trending) > 0 {
		res.Topics = topic.FromTrending(trending)
	} else {
		res.Source = domain.TopicSourceArticles
		stats, err := s.topics.GetArticleTopicStats(ctx, q)
		if err != nil {
			lgr.Printf("[WARN] failed to get article topic stats: %v", err)
		}
		res.Topics = topic.FromArticleStats(stats)
	}

	if req.Randomize {
		s.shuffle(len(res.Topics), func(i, j int) { res.Topics[i], res.Topics[j] = res.Topics[j], res.Topics[i] })
	}
	if req.Diverse {
		res.Topics = topic.SelectDiverse(res.Topics, req.Limit)
	} else if req.Limit > 0 && len(res.Topics) > req.Limit {
		res.Topics = res.Topics[:req.Limit]
	}
	return res
}

// SuggestTopics returns trending topics containing the normalized query, for autocomplete
func (s *Service) SuggestTopics(ctx context.Context, query string, limit int) []domain.Topic {
	key := topic.NormalizeKey(query)
	if utf8.RuneCountInString(key) < MinSuggestLength {
		return []domain.Topic{}
	}
	rows, err := s.topics.SuggestTrending(ctx, key, limit)
	if err != nil {
		lgr.Printf("[WARN] failed to suggest topics for %q: %v", query, err)
		return []domain.Topic{}
	}
	return topic.FromTrending(rows)
}

// annotate converts matches to response views scored with the strategy
func annotate(matches []domain.TopicMatch, total int, strategy relevance.Strategy, bounded bool) []domain.ArticleWithRelevance {
	res := make([]domain.ArticleWithRelevance, 0, len(matches))
	for _, m := range matches {
		matched := min(m.MatchCount, total)
		res = append(res, domain.ArticleWithRelevance{
			Article: m.Article,
			Snippet: content.Snippet(m.Content, content.SnippetLength),
			RelevanceScore: relevance.Score(strategy, relevance.Input{
				MatchedTopics: matched,
				TotalTopics:   total,
				AvgWeight:     m.AvgWeight,
				MaxWeight:     m.MaxWeight,
				Bounded:       bounded,
			}),
			MatchedTopics: nonNil(m.MatchedTopics),
		})
	}
	return res
}

// fuzzyPatterns lowercases and dedups topics, queries about games get the gaming patterns added
func fuzzyPatterns(topics []string) []string {
	seen := map[string]bool{}
	res := []string{}
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		res = append(res, p)
	}

	gaming := false
	for _, t := range topics {
		p := strings.ToLower(strings.TrimSpace(t))
		add(p)
		if strings.Contains(p, "game") || strings.Contains(p, "gaming") {
			gaming = true
		}
	}
	if gaming {
		for _, p := range gamingPatterns {
			add(p)
		}
	}
	return res
}

// normalizeTypes trims and uppercases entity types, dropping empty ones
func normalizeTypes(types []string) []string {
	if len(types) == 0 {
		return nil
	}
	res := make([]string, 0, len(types))
	for _, t := range types {
		if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
			res = append(res, t)
		}
	}
	return res
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
