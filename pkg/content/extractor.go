package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

// maxPageSize limits how much of a page is read for extraction
const maxPageSize = 5 * 1024 * 1024

// Page is the readable part of an article page
type Page struct {
	Title     string
	Text      string
	Published time.Time // zero if the page has no date metadata
}

// HTTPExtractor fetches article pages and extracts their main text with trafilatura
type HTTPExtractor struct {
	client    *http.Client
	userAgent string
}

// NewHTTPExtractor creates a new content extractor
func NewHTTPExtractor(timeout time.Duration, userAgent string) *HTTPExtractor {
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; UselessFacts/1.0)"
	}
	return &HTTPExtractor{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Extract retrieves the page and returns its main text along with title and date metadata
func (e *HTTPExtractor) Extract(ctx context.Context, pageURL string) (*Page, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	setPageHeaders(req, e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, pageURL)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}
	result, err := trafilatura.Extract(io.LimitReader(resp.Body, maxPageSize), opts)
	if err != nil {
		return nil, fmt.Errorf("extract content from %s: %w", pageURL, err)
	}
	if result == nil {
		return nil, fmt.Errorf("no content extracted from %s", pageURL)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return nil, fmt.Errorf("no text content extracted from %s", pageURL)
	}

	return &Page{
		Title:     strings.TrimSpace(result.Metadata.Title),
		Text:      text,
		Published: result.Metadata.Date,
	}, nil
}
