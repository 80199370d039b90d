package facts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/facts/mocks"
	"github.com/umputun/uselessfacts/pkg/search"
)

func emptySearcher() *mocks.SearcherMock {
	return &mocks.SearcherMock{
		FindArticlesByTopicsWithRelevanceFunc: func(ctx context.Context, topics []string, opts domain.MatchOptions) []domain.ArticleWithRelevance {
			return []domain.ArticleWithRelevance{}
		},
		FindArticlesByTopicsFuzzyFunc: func(ctx context.Context, topics []string, opts domain.MatchOptions) []domain.TopicMatch {
			return []domain.TopicMatch{}
		},
		SearchArticlesByTextFunc: func(ctx context.Context, query string, opts domain.TextOptions) search.Result {
			return search.Result{Articles: []domain.ArticleWithRelevance{}, Strategy: search.StrategySemantic}
		},
	}
}

func okStore() *mocks.StoreMock {
	return &mocks.StoreMock{CreateFactFunc: func(ctx context.Context, fact *domain.Fact) error { return nil }}
}

func okWriter(text string) *mocks.WriterMock {
	return &mocks.WriterMock{WriteFactFunc: func(ctx context.Context, topics, snippets []string) (string, error) { return text, nil }}
}

func TestService_Realtime_WeightedTier(t *testing.T) {
	searcher := emptySearcher()
	var articles []domain.ArticleWithRelevance
	for i := range 7 {
		articles = append(articles, domain.ArticleWithRelevance{
			Article: domain.Article{ID: int64(i + 1), Title: "t", Content: "content"},
			Snippet: "snippet",
		})
	}
	articles[1].Snippet = ""
	searcher.FindArticlesByTopicsWithRelevanceFunc = func(ctx context.Context, topics []string, opts domain.MatchOptions) []domain.ArticleWithRelevance {
		return articles
	}
	store, writer := okStore(), okWriter("Octopuses have three hearts.")
	svc := NewService(searcher, store, writer)
	svc.newID = func() string { return "fact-1" }

	window := 168
	fact, err := svc.Realtime(context.Background(), []string{" Octopus ", "octopus", "", "Marine Biology"}, &window)
	require.NoError(t, err)

	assert.Equal(t, "fact-1", fact.ID)
	assert.Equal(t, "Octopuses have three hearts.", fact.Text)
	assert.Equal(t, []string{"Octopus", "Marine Biology"}, fact.Topics)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, fact.SourceArticleIDs)

	calls := searcher.FindArticlesByTopicsWithRelevanceCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.MatchOptions{MatchType: domain.MatchAny, Limit: SourceLimit, TimeWindow: &window}, calls[0].Opts)
	assert.Empty(t, searcher.FindArticlesByTopicsFuzzyCalls())
	assert.Empty(t, searcher.SearchArticlesByTextCalls())

	wc := writer.WriteFactCalls()
	require.Len(t, wc, 1)
	assert.Equal(t, []string{"snippet", "t: content", "snippet", "snippet", "snippet"}, wc[0].Snippets)
	require.Len(t, store.CreateFactCalls(), 1)
	assert.Same(t, fact, store.CreateFactCalls()[0].Fact)
}

func TestService_Realtime_FuzzyTier(t *testing.T) {
	searcher := emptySearcher()
	searcher.FindArticlesByTopicsFuzzyFunc = func(ctx context.Context, topics []string, opts domain.MatchOptions) []domain.TopicMatch {
		return []domain.TopicMatch{{Article: domain.Article{ID: 9, Title: "Gaming news", Content: "A new console"}}}
	}
	writer := okWriter("fact")
	fact, err := NewService(searcher, okStore(), writer).Realtime(context.Background(), []string{"gaming"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{9}, fact.SourceArticleIDs)
	assert.Equal(t, []string{"Gaming news: A new console"}, writer.WriteFactCalls()[0].Snippets)
	assert.Empty(t, searcher.SearchArticlesByTextCalls())
	assert.NotEmpty(t, fact.ID, "uuid assigned")
}

func TestService_Realtime_SemanticTier(t *testing.T) {
	searcher := emptySearcher()
	searcher.SearchArticlesByTextFunc = func(ctx context.Context, query string, opts domain.TextOptions) search.Result {
		return search.Result{Articles: []domain.ArticleWithRelevance{{Article: domain.Article{ID: 4}, Snippet: "deep space"}}}
	}
	fact, err := NewService(searcher, okStore(), okWriter("fact")).Realtime(context.Background(), []string{"space", "exploration"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, fact.SourceArticleIDs)

	calls := searcher.SearchArticlesByTextCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "space exploration", calls[0].Query)
	assert.Equal(t, SourceLimit, calls[0].Opts.Limit)
}

func TestService_Realtime_Errors(t *testing.T) {
	t.Run("no topics", func(t *testing.T) {
		searcher := emptySearcher()
		_, err := NewService(searcher, okStore(), okWriter("x")).Realtime(context.Background(), []string{" ", "!!"}, nil)
		require.ErrorIs(t, err, ErrNoTopics)
		assert.Empty(t, searcher.FindArticlesByTopicsWithRelevanceCalls())
	})

	t.Run("no sources", func(t *testing.T) {
		writer := okWriter("x")
		_, err := NewService(emptySearcher(), okStore(), writer).Realtime(context.Background(), []string{"nothing"}, nil)
		require.ErrorIs(t, err, ErrNoSources)
		assert.Empty(t, writer.WriteFactCalls())
	})

	withSource := func() *mocks.SearcherMock {
		s := emptySearcher()
		s.FindArticlesByTopicsWithRelevanceFunc = func(ctx context.Context, topics []string, opts domain.MatchOptions) []domain.ArticleWithRelevance {
			return []domain.ArticleWithRelevance{{Article: domain.Article{ID: 1}, Snippet: "s"}}
		}
		return s
	}

	t.Run("writer fails", func(t *testing.T) {
		writer := &mocks.WriterMock{WriteFactFunc: func(ctx context.Context, topics, snippets []string) (string, error) {
			return "", errors.New("llm down")
		}}
		store := okStore()
		_, err := NewService(withSource(), store, writer).Realtime(context.Background(), []string{"a"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm down")
		assert.Empty(t, store.CreateFactCalls())
	})

	t.Run("store fails", func(t *testing.T) {
		store := &mocks.StoreMock{CreateFactFunc: func(ctx context.Context, fact *domain.Fact) error { return errors.New("locked") }}
		_, err := NewService(withSource(), store, okWriter("x")).Realtime(context.Background(), []string{"a"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store fact")
	})
}

func TestService_ListGetRate(t *testing.T) {
	fact := &domain.Fact{ID: "f1", Text: "fact", Upvotes: 1}
	store := &mocks.StoreMock{
		ListFactsFunc: func(ctx context.Context, limit, offset int) ([]domain.Fact, error) {
			return []domain.Fact{*fact}, nil
		},
		GetFactFunc: func(ctx context.Context, id string) (*domain.Fact, error) {
			if id != "f1" {
				return nil, domain.ErrNotFound
			}
			return fact, nil
		},
		RateFactFunc: func(ctx context.Context, id string, vote domain.Vote) (*domain.Fact, error) {
			return fact, nil
		},
	}
	svc := NewService(emptySearcher(), store, okWriter("x"))

	list, err := svc.List(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 10, store.ListFactsCalls()[0].Limit)
	assert.Equal(t, 20, store.ListFactsCalls()[0].Offset)

	got, err := svc.Get(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "fact", got.Text)
	_, err = svc.Get(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Rate(context.Background(), "f1", "UP")
	require.NoError(t, err)
	assert.Equal(t, domain.VoteUp, store.RateFactCalls()[0].Vote)

	_, err = svc.Rate(context.Background(), "f1", "sideways")
	require.Error(t, err)
	assert.Len(t, store.RateFactCalls(), 1)

	store.ListFactsFunc = func(ctx context.Context, limit, offset int) ([]domain.Fact, error) { return nil, errors.New("boom") }
	_, err = svc.List(context.Background(), 10, 0)
	require.Error(t, err)
}

func TestCleanTopics(t *testing.T) {
	assert.Equal(t, []string{"AI", "Space Exploration"}, cleanTopics([]string{"AI", " ai ", "Space Exploration", "space-exploration", "  "}))
	assert.Empty(t, cleanTopics(nil))
}
