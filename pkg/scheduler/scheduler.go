package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/uselessfacts/pkg/config"
	"github.com/umputun/uselessfacts/pkg/content"
	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/feed"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/entities.go -pkg mocks -skip-ensure -fmt goimports . EntityExtractor
//go:generate moq -out mocks/embedder.go -pkg mocks -skip-ensure -fmt goimports . Embedder

// Store persists ingested articles
type Store interface {
	ArticleExists(ctx context.Context, url string) (bool, error)
	CreateArticle(ctx context.Context, article *domain.Article, topics []domain.ArticleTopic) (bool, error)
	Purge(ctx context.Context, cutoff time.Time) (articles, trending int64, err error)
}

// Parser fetches and parses a feed
type Parser interface {
	Parse(ctx context.Context, url string) (*feed.Feed, error)
}

// Extractor pulls the main text out of an article page
type Extractor interface {
	Extract(ctx context.Context, url string) (*content.Page, error)
}

// EntityExtractor finds topics in article text
type EntityExtractor interface {
	Extract(ctx context.Context, title, text string) ([]domain.ArticleTopic, error)
}

// Embedder makes the vector used by semantic search
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Params holds scheduler dependencies and configuration
type Params struct {
	Store     Store
	Parser    Parser
	Extractor Extractor // optional, feed text is used when nil
	Entities  EntityExtractor
	Embedder  Embedder // optional, articles are stored without embedding when nil

	Feeds          []config.Feed
	UpdateInterval time.Duration
	MaxWorkers     int
	MinTextLength  int // extracted text shorter than this falls back to feed text
	PurgeCron      string
	Retention      time.Duration
}

// Scheduler runs feed ingestion and the retention purge
type Scheduler struct {
	Params
	cron *cron.Cron

	mu        sync.Mutex
	nextFetch map[string]time.Time // feed url -> next fetch time

	wg     sync.WaitGroup
	cancel context.CancelFunc
	now    func() time.Time
}

// NewScheduler creates a new scheduler instance
func NewScheduler(p Params) *Scheduler {
	if p.UpdateInterval <= 0 {
		p.UpdateInterval = 30 * time.Minute
	}
	if p.MaxWorkers <= 0 {
		p.MaxWorkers = 5
	}
	return &Scheduler{Params: p, nextFetch: make(map[string]time.Time), now: time.Now}
}

// Start begins periodic feed updates and schedules the purge job
func (s *Scheduler) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	if s.PurgeCron != "" && s.Retention > 0 {
		s.cron = cron.New()
		if _, err := s.cron.AddFunc(s.PurgeCron, func() { s.Purge(ctx) }); err != nil {
			s.cancel()
			return fmt.Errorf("schedule purge %q: %w", s.PurgeCron, err)
		}
		s.cron.Start()
	}

	s.wg.Add(1)
	go s.feedUpdateWorker(ctx)

	lgr.Printf("[INFO] scheduler started with %d feeds, tick %v, purge %q", len(s.Feeds), s.tick(), s.PurgeCron)
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// tick is the shortest feed interval, so every feed is checked at least as often as it asks for
func (s *Scheduler) tick() time.Duration {
	res := s.UpdateInterval
	for _, f := range s.Feeds {
		if f.Interval > 0 && f.Interval < res {
			res = f.Interval
		}
	}
	return res
}

func (s *Scheduler) feedUpdateWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tick())
	defer ticker.Stop()

	// run immediately on start
	s.UpdateFeeds(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.UpdateFeeds(ctx)
		}
	}
}

// UpdateFeeds fetches every feed that is due, up to MaxWorkers at a time
func (s *Scheduler) UpdateFeeds(ctx context.Context) {
	due := s.dueFeeds()
	if len(due) == 0 {
		return
	}
	lgr.Printf("[DEBUG] updating %d feeds", len(due))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.MaxWorkers)
	for _, f := range due {
		g.Go(func() error {
			added, err := s.UpdateFeed(gctx, f)
			if err != nil {
				lgr.Printf("[WARN] failed to update feed %s: %v", f.Name, err)
				return nil // one broken feed should not stop the others
			}
			if added > 0 {
				lgr.Printf("[INFO] added %d new articles from %s", added, f.Name)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// dueFeeds returns feeds whose next fetch time has passed and moves it forward
func (s *Scheduler) dueFeeds() []config.Feed {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var res []config.Feed
	for _, f := range s.Feeds {
		if next, ok := s.nextFetch[f.URL]; ok && now.Before(next) {
			continue
		}
		interval := f.Interval
		if interval <= 0 {
			interval = s.UpdateInterval
		}
		s.nextFetch[f.URL] = now.Add(interval)
		res = append(res, f)
	}
	return res
}

// UpdateFeed fetches one feed and ingests its new items, returns the number of stored articles
func (s *Scheduler) UpdateFeed(ctx context.Context, f config.Feed) (int, error) {
	parsed, err := s.Parser.Parse(ctx, f.URL)
	if err != nil {
		return 0, fmt.Errorf("parse feed: %w", err)
	}

	added := 0
	for _, item := range parsed.Items {
		if ctx.Err() != nil {
			return added, ctx.Err()
		}
		created, err := s.processItem(ctx, f.Name, item)
		if err != nil {
			lgr.Printf("[WARN] failed to process %s: %v", item.Link, err)
			continue
		}
		if created {
			added++
		}
	}
	return added, nil
}

// Purge removes articles and trending topics older than the retention period
func (s *Scheduler) Purge(ctx context.Context) {
	cutoff := s.now().Add(-s.Retention)
	articles, trending, err := s.Store.Purge(ctx, cutoff)
	if err != nil {
		lgr.Printf("[ERROR] purge failed: %v", err)
		return
	}
	lgr.Printf("[INFO] purged %d articles and %d trending topics older than %s",
		articles, trending, cutoff.Format(time.RFC3339))
}
