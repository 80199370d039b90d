package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Feed is a parsed RSS/Atom feed
type Feed struct {
	Title       string
	Description string
	Link        string
	Items       []Item
}

// Item is a single feed entry
type Item struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Content     string
	Author      string
	Published   time.Time
}

// Body returns the richest text the feed carries for the item, HTML included
func (i Item) Body() string {
	if strings.TrimSpace(i.Content) != "" {
		return i.Content
	}
	return i.Description
}

// Parser fetches and parses RSS/Atom feeds
type Parser struct {
	client    *http.Client
	userAgent string
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	if userAgent == "" {
		userAgent = "UselessFacts/1.0"
	}
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Parse fetches and parses a feed from the given URL
func (p *Parser) Parse(ctx context.Context, url string) (*Feed, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	result := &Feed{
		Title:       feed.Title,
		Description: feed.Description,
		Link:        feed.Link,
		Items:       make([]Item, 0, len(feed.Items)),
	}
	for _, item := range feed.Items {
		if item.Link == "" {
			continue // articles are keyed by url
		}
		parsed := Item{
			GUID:        item.GUID,
			Title:       strings.TrimSpace(item.Title),
			Link:        item.Link,
			Description: item.Description,
			Content:     item.Content,
		}
		if parsed.GUID == "" {
			parsed.GUID = item.Link
		}
		if item.Author != nil {
			parsed.Author = item.Author.Name
		}
		switch {
		case item.PublishedParsed != nil:
			parsed.Published = *item.PublishedParsed
		case item.UpdatedParsed != nil:
			parsed.Published = *item.UpdatedParsed
		}
		result.Items = append(result.Items, parsed)
	}
	return result, nil
}

func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}
