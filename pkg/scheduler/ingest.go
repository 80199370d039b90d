package scheduler

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/uselessfacts/pkg/content"
	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/feed"
)

// processItem turns a feed item into an article and ingests it, skipping known urls
func (s *Scheduler) processItem(ctx context.Context, source string, item feed.Item) (bool, error) {
	exists, err := s.Store.ArticleExists(ctx, item.Link)
	if err != nil {
		return false, fmt.Errorf("check article: %w", err)
	}
	if exists {
		return false, nil
	}

	article := &domain.Article{
		Title:       item.Title,
		Content:     content.PlainText(item.Body()),
		URL:         item.Link,
		Source:      source,
		PublishedAt: item.Published,
	}

	if s.Extractor != nil {
		page, err := s.Extractor.Extract(ctx, item.Link)
		switch {
		case err != nil:
			lgr.Printf("[DEBUG] extraction failed for %s, using feed text: %v", item.Link, err)
		case utf8.RuneCountInString(page.Text) < s.MinTextLength:
			lgr.Printf("[DEBUG] extracted text too short for %s, using feed text", item.Link)
		default:
			article.Content = content.CollapseSpaces(page.Text)
			if article.Title == "" {
				article.Title = page.Title
			}
			if article.PublishedAt.IsZero() {
				article.PublishedAt = page.Published
			}
		}
	}

	return s.Ingest(ctx, article, nil)
}

// Ingest stores an article. Topics are extracted when none are given and the article is embedded
// when an embedder is set. Extraction and embedding failures are logged and the article is stored
// without them. Returns false when an article with the same url already exists.
func (s *Scheduler) Ingest(ctx context.Context, article *domain.Article, topics []domain.ArticleTopic) (bool, error) {
	if strings.TrimSpace(article.URL) == "" {
		return false, fmt.Errorf("article url is required")
	}
	if strings.TrimSpace(article.Title) == "" && strings.TrimSpace(article.Content) == "" {
		return false, fmt.Errorf("article %s has no title and no content", article.URL)
	}

	if len(topics) == 0 && s.Entities != nil {
		extracted, err := s.Entities.Extract(ctx, article.Title, article.Content)
		if err != nil {
			lgr.Printf("[WARN] entity extraction failed for %s: %v", article.URL, err)
		}
		topics = extracted
	}

	if s.Embedder != nil && len(article.Embedding) == 0 {
		vec, err := s.Embedder.Embed(ctx, strings.TrimSpace(article.Title+"\n\n"+article.Content))
		if err != nil {
			lgr.Printf("[WARN] embedding failed for %s: %v", article.URL, err)
		}
		article.Embedding = vec
	}

	created, err := s.Store.CreateArticle(ctx, article, topics)
	if err != nil {
		return false, fmt.Errorf("store article: %w", err)
	}
	if created {
		lgr.Printf("[DEBUG] stored article %d %q with %d topics", article.ID, article.Title, len(topics))
	}
	return created, nil
}
