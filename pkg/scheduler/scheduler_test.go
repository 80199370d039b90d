package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/uselessfacts/pkg/config"
	"github.com/umputun/uselessfacts/pkg/content"
	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/feed"
	"github.com/umputun/uselessfacts/pkg/scheduler/mocks"
)

// memStore is a Store mock keeping created articles by url
func memStore() (*mocks.StoreMock, func() map[string]*domain.Article) {
	var mu sync.Mutex
	stored := map[string]*domain.Article{}
	m := &mocks.StoreMock{
		ArticleExistsFunc: func(ctx context.Context, url string) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			_, ok := stored[url]
			return ok, nil
		},
		CreateArticleFunc: func(ctx context.Context, article *domain.Article, topics []domain.ArticleTopic) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := stored[article.URL]; ok {
				return false, nil
			}
			article.ID = int64(len(stored) + 1)
			stored[article.URL] = article
			return true, nil
		},
	}
	return m, func() map[string]*domain.Article {
		mu.Lock()
		defer mu.Unlock()
		res := make(map[string]*domain.Article, len(stored))
		for k, v := range stored {
			res[k] = v
		}
		return res
	}
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(Params{})
	assert.Equal(t, 30*time.Minute, s.UpdateInterval)
	assert.Equal(t, 5, s.MaxWorkers)
	assert.Equal(t, 30*time.Minute, s.tick())

	s = NewScheduler(Params{UpdateInterval: time.Hour, Feeds: []config.Feed{{URL: "a", Interval: 5 * time.Minute}, {URL: "b"}}})
	assert.Equal(t, 5*time.Minute, s.tick(), "shortest feed interval wins")
}

func TestScheduler_UpdateFeed(t *testing.T) {
	published := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store, stored := memStore()
	parser := &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*feed.Feed, error) {
			return &feed.Feed{Items: []feed.Item{
				{Title: "Octopus hearts", Link: "https://example.com/1", Description: "<p>Octopuses have <b>three</b> hearts</p>", Published: published},
				{Title: "Known", Link: "https://example.com/known"},
				{Title: "Mars ice", Link: "https://example.com/2", Content: "<div>Ice found</div>", Description: "ignored"},
			}}, nil
		},
	}
	entities := &mocks.EntityExtractorMock{
		ExtractFunc: func(ctx context.Context, title, text string) ([]domain.ArticleTopic, error) {
			return []domain.ArticleTopic{{EntityText: title, EntityType: domain.EntityConcept, TFIDFScore: 0.5, NERConfidence: 0.9}}, nil
		},
	}
	embedder := &mocks.EmbedderMock{
		EmbedFunc: func(ctx context.Context, text string) ([]float32, error) { return []float32{1, 0}, nil },
	}

	// pre-store known article
	_, err := store.CreateArticle(context.Background(), &domain.Article{URL: "https://example.com/known"}, nil)
	require.NoError(t, err)

	s := NewScheduler(Params{Store: store, Parser: parser, Entities: entities, Embedder: embedder})
	added, err := s.UpdateFeed(context.Background(), config.Feed{URL: "https://example.com/feed", Name: "Example"})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	articles := stored()
	a1 := articles["https://example.com/1"]
	require.NotNil(t, a1)
	assert.Equal(t, "Octopuses have three hearts", a1.Content)
	assert.Equal(t, "Example", a1.Source)
	assert.Equal(t, published, a1.PublishedAt)
	assert.Equal(t, []float32{1, 0}, a1.Embedding)
	assert.Equal(t, "Ice found", articles["https://example.com/2"].Content, "content preferred over description")

	require.Len(t, entities.ExtractCalls(), 2)
	assert.Equal(t, "Octopus hearts", entities.ExtractCalls()[0].Title)
	require.Len(t, embedder.EmbedCalls(), 2)
	assert.Equal(t, "Octopus hearts\n\nOctopuses have three hearts", embedder.EmbedCalls()[0].Text)

	calls := store.CreateArticleCalls()
	require.Len(t, calls, 3) // pre-stored plus two new
	assert.Len(t, calls[1].Topics, 1)
}

func TestScheduler_UpdateFeed_ParseError(t *testing.T) {
	parser := &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*feed.Feed, error) { return nil, errors.New("boom") },
	}
	s := NewScheduler(Params{Parser: parser})
	_, err := s.UpdateFeed(context.Background(), config.Feed{URL: "u"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestScheduler_ProcessItem_Extraction(t *testing.T) {
	longText := "The James Webb telescope found water vapor around a distant exoplanet orbiting a red dwarf star."

	tests := []struct {
		name        string
		page        *content.Page
		err         error
		wantContent string
		wantTitle   string
		wantPub     time.Time
	}{
		{name: "extracted text used", page: &content.Page{Title: "Page title", Text: "  " + longText + "\n",
			Published: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
			wantContent: longText, wantTitle: "Page title", wantPub: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{name: "short text falls back", page: &content.Page{Text: "tiny"}, wantContent: "feed text"},
		{name: "error falls back", err: errors.New("403"), wantContent: "feed text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, stored := memStore()
			extractor := &mocks.ExtractorMock{
				ExtractFunc: func(ctx context.Context, url string) (*content.Page, error) { return tt.page, tt.err },
			}
			s := NewScheduler(Params{Store: store, Extractor: extractor, MinTextLength: 50})
			created, err := s.processItem(context.Background(), "src", feed.Item{Link: "https://example.com/x", Description: "feed text"})
			require.NoError(t, err)
			assert.True(t, created)

			a := stored()["https://example.com/x"]
			require.NotNil(t, a)
			assert.Equal(t, tt.wantContent, a.Content)
			assert.Equal(t, tt.wantTitle, a.Title)
			assert.Equal(t, tt.wantPub, a.PublishedAt)
		})
	}
}

func TestScheduler_Ingest(t *testing.T) {
	t.Run("given topics skip extraction, failures do not block storing", func(t *testing.T) {
		store, stored := memStore()
		entities := &mocks.EntityExtractorMock{
			ExtractFunc: func(ctx context.Context, title, text string) ([]domain.ArticleTopic, error) {
				return nil, errors.New("llm down")
			},
		}
		embedder := &mocks.EmbedderMock{
			EmbedFunc: func(ctx context.Context, text string) ([]float32, error) { return nil, errors.New("no embeddings") },
		}
		s := NewScheduler(Params{Store: store, Entities: entities, Embedder: embedder})

		topics := []domain.ArticleTopic{{EntityText: "NASA", EntityType: domain.EntityOrganization, TFIDFScore: 0.8}}
		created, err := s.Ingest(context.Background(), &domain.Article{Title: "t1", URL: "u1"}, topics)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Empty(t, entities.ExtractCalls())
		assert.Equal(t, topics, store.CreateArticleCalls()[0].Topics)

		created, err = s.Ingest(context.Background(), &domain.Article{Title: "t2", URL: "u2"}, nil)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Len(t, entities.ExtractCalls(), 1)
		assert.Empty(t, store.CreateArticleCalls()[1].Topics)
		assert.Nil(t, stored()["u2"].Embedding)
	})

	t.Run("duplicate url", func(t *testing.T) {
		store, _ := memStore()
		s := NewScheduler(Params{Store: store})
		created, err := s.Ingest(context.Background(), &domain.Article{Title: "t", URL: "u"}, nil)
		require.NoError(t, err)
		assert.True(t, created)
		created, err = s.Ingest(context.Background(), &domain.Article{Title: "t", URL: "u"}, nil)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("validation", func(t *testing.T) {
		s := NewScheduler(Params{Store: &mocks.StoreMock{}})
		_, err := s.Ingest(context.Background(), &domain.Article{Title: "t"}, nil)
		require.Error(t, err)
		_, err = s.Ingest(context.Background(), &domain.Article{URL: "u", Content: " "}, nil)
		require.Error(t, err)
	})

	t.Run("store error", func(t *testing.T) {
		store := &mocks.StoreMock{
			CreateArticleFunc: func(ctx context.Context, article *domain.Article, topics []domain.ArticleTopic) (bool, error) {
				return false, errors.New("disk full")
			},
		}
		_, err := NewScheduler(Params{Store: store}).Ingest(context.Background(), &domain.Article{Title: "t", URL: "u"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestScheduler_UpdateFeeds_DueAndConcurrent(t *testing.T) {
	var mu sync.Mutex
	parsed := map[string]int{}
	parser := &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*feed.Feed, error) {
			mu.Lock()
			parsed[url]++
			mu.Unlock()
			if url == "bad" {
				return nil, errors.New("bad feed")
			}
			return &feed.Feed{}, nil
		},
	}
	feeds := []config.Feed{
		{URL: "fast", Name: "fast", Interval: time.Minute},
		{URL: "slow", Name: "slow", Interval: time.Hour},
		{URL: "bad", Name: "bad", Interval: time.Minute},
	}
	s := NewScheduler(Params{Parser: parser, Feeds: feeds, MaxWorkers: 2})
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.UpdateFeeds(context.Background())
	assert.Equal(t, map[string]int{"fast": 1, "slow": 1, "bad": 1}, parsed)

	now = now.Add(2 * time.Minute)
	s.UpdateFeeds(context.Background())
	assert.Equal(t, map[string]int{"fast": 2, "slow": 1, "bad": 2}, parsed, "slow feed not due yet")

	now = now.Add(time.Hour)
	s.UpdateFeeds(context.Background())
	assert.Equal(t, map[string]int{"fast": 3, "slow": 2, "bad": 3}, parsed)
}

func TestScheduler_Purge(t *testing.T) {
	var gotCutoff time.Time
	store := &mocks.StoreMock{
		PurgeFunc: func(ctx context.Context, cutoff time.Time) (int64, int64, error) {
			gotCutoff = cutoff
			return 3, 2, nil
		},
	}
	s := NewScheduler(Params{Store: store, Retention: 48 * time.Hour})
	now := time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.Purge(context.Background())
	assert.Equal(t, now.Add(-48*time.Hour), gotCutoff)

	store.PurgeFunc = func(ctx context.Context, cutoff time.Time) (int64, int64, error) { return 0, 0, errors.New("locked") }
	assert.NotPanics(t, func() { s.Purge(context.Background()) })
}

func TestScheduler_StartStop(t *testing.T) {
	parser := &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*feed.Feed, error) { return &feed.Feed{}, nil },
	}
	s := NewScheduler(Params{Parser: parser, Store: &mocks.StoreMock{}, Feeds: []config.Feed{{URL: "f"}},
		UpdateInterval: time.Hour, PurgeCron: "0 3 * * *", Retention: time.Hour})
	require.NoError(t, s.Start(context.Background()))

	assert.Eventually(t, func() bool { return len(parser.ParseCalls()) == 1 }, time.Second, 10*time.Millisecond,
		"feeds fetched on start")
	s.Stop()

	bad := NewScheduler(Params{Parser: parser, PurgeCron: "not a cron", Retention: time.Hour})
	require.Error(t, bad.Start(context.Background()))
}
