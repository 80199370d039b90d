package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/uselessfacts/pkg/config"
	"github.com/umputun/uselessfacts/pkg/domain"
)

func testArticles() []domain.ArticleWithRelevance {
	pubTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return []domain.ArticleWithRelevance{
		{
			Article: domain.Article{ID: 1, Title: "Webb finds water", URL: "https://example.com/article1",
				Source: "Space News", PublishedAt: pubTime},
			Snippet:        "The telescope spotted water vapor...",
			RelevanceScore: 0.85,
			MatchedTopics:  []string{"James Webb", "NASA"},
		},
		{
			Article:        domain.Article{ID: 2, Title: "Rover update", URL: "https://example.com/article2", PublishedAt: pubTime.Add(time.Hour)},
			RelevanceScore: 0.4,
		},
	}
}

func TestGenerator_GenerateTopicRSS(t *testing.T) {
	generator := NewGenerator("https://example.com")

	t.Run("topic feed", func(t *testing.T) {
		rss, err := generator.GenerateTopicRSS("space exploration", testArticles())
		require.NoError(t, err)

		assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, rss, `<title>Useless Facts - space exploration</title>`)
		assert.Contains(t, rss, `<link>https://example.com/</link>`)
		assert.Contains(t, rss, `href="https://example.com/rss/space%20exploration"`)

		assert.Contains(t, rss, `<title>Webb finds water</title>`)
		assert.Contains(t, rss, `<guid>https://example.com/article1</guid>`)
		assert.Contains(t, rss, `<author>Space News</author>`)
		assert.Contains(t, rss, `Relevance: 0.85`)
		assert.Contains(t, rss, `Topics: James Webb, NASA`)
		assert.Contains(t, rss, `<category>NASA</category>`)
		assert.Contains(t, rss, `<title>Rover update</title>`)
		assert.Contains(t, rss, `Mon, 01 Jan 2024 12:00:00 +0000`)
	})

	t.Run("empty articles", func(t *testing.T) {
		rss, err := generator.GenerateTopicRSS("nothing", nil)
		require.NoError(t, err)
		assert.Contains(t, rss, `<channel>`)
		assert.NotContains(t, rss, `<item>`)
	})

	t.Run("trailing slash in base URL", func(t *testing.T) {
		rss, err := NewGenerator("https://example.com/").GenerateTopicRSS("ai", testArticles()[:1])
		require.NoError(t, err)
		assert.Contains(t, rss, `href="https://example.com/rss/ai"`)
		assert.NotContains(t, rss, `https://example.com//`)
	})
}

func TestGenerator_convertToRSSItem(t *testing.T) {
	item := NewGenerator("https://example.com").convertToRSSItem(testArticles()[0])

	assert.Equal(t, "Webb finds water", item.Title)
	assert.Equal(t, "https://example.com/article1", item.Link)
	assert.Equal(t, []string{"James Webb", "NASA"}, item.Categories)
	assert.Contains(t, item.Description, "The telescope spotted water vapor...")
}

func TestGenerator_GenerateOPML(t *testing.T) {
	opml, err := NewGenerator("https://example.com").GenerateOPML([]config.Feed{
		{URL: "https://technews.com/feed.xml", Name: "Tech News"},
		{URL: "https://sciencedaily.com/rss", Name: "Science & Daily"},
	})
	require.NoError(t, err)

	assert.Contains(t, opml, `<opml version="2.0">`)
	assert.Contains(t, opml, `<title>Useless Facts Sources</title>`)
	assert.Contains(t, opml, `text="Tech News"`)
	assert.Contains(t, opml, `xmlUrl="https://technews.com/feed.xml"`)
	assert.Contains(t, opml, `title="Science &amp; Daily"`)
}

func TestRSSXMLStructure(t *testing.T) {
	articles := []domain.ArticleWithRelevance{{
		Article: domain.Article{Title: "Test & Article <with> Special Characters", URL: "https://example.com/a",
			Source: "Author & Co.", PublishedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		MatchedTopics: []string{"Tech & Science"},
	}}

	rss, err := NewGenerator("https://example.com").GenerateTopicRSS("tech", articles)
	require.NoError(t, err)

	assert.Contains(t, rss, "Test &amp; Article &lt;with&gt; Special Characters")
	assert.Contains(t, rss, "Author &amp; Co.")
	assert.Contains(t, rss, "Tech &amp; Science")
	assert.Regexp(t, `(?s)<rss[^>]*>.*<channel>.*</channel>.*</rss>`, rss)
}
