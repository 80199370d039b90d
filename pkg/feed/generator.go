package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/uselessfacts/pkg/config"
	"github.com/umputun/uselessfacts/pkg/domain"
)

// Generator creates RSS feeds from topic matches
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/")}
}

// GenerateTopicRSS creates an RSS 2.0 feed of articles matching a topic
func (g *Generator) GenerateTopicRSS(topic string, articles []domain.ArticleWithRelevance) (string, error) {
	selfLink := fmt.Sprintf("%s/rss/%s", g.baseURL, url.PathEscape(topic))

	rssItems := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		rssItems = append(rssItems, g.convertToRSSItem(a))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "Useless Facts - " + topic,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Recent articles about %s", topic),
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

func (g *Generator) convertToRSSItem(a domain.ArticleWithRelevance) *RSSItem {
	desc := fmt.Sprintf("Relevance: %.2f", a.RelevanceScore)
	if len(a.MatchedTopics) > 0 {
		desc += fmt.Sprintf("\nTopics: %s", strings.Join(a.MatchedTopics, ", "))
	}
	if a.Snippet != "" {
		desc += "\n\n" + a.Snippet
	}

	return &RSSItem{
		Title:       a.Title,
		Link:        a.URL,
		GUID:        a.URL,
		Description: desc,
		Author:      a.Source,
		PubDate:     a.PublishedAt.Format(time.RFC1123Z),
		Categories:  a.MatchedTopics,
	}
}

// GenerateOPML creates an OPML file with the ingested feed sources
func (g *Generator) GenerateOPML(feeds []config.Feed) (string, error) {
	type outline struct {
		XMLName xml.Name `xml:"outline"`
		Text    string   `xml:"text,attr"`
		Title   string   `xml:"title,attr"`
		Type    string   `xml:"type,attr"`
		XMLUrl  string   `xml:"xmlUrl,attr"`
	}
	type body struct {
		XMLName  xml.Name  `xml:"body"`
		Outlines []outline `xml:"outline"`
	}
	type head struct {
		XMLName     xml.Name `xml:"head"`
		Title       string   `xml:"title"`
		DateCreated string   `xml:"dateCreated"`
	}
	type opml struct {
		XMLName xml.Name `xml:"opml"`
		Version string   `xml:"version,attr"`
		Head    head     `xml:"head"`
		Body    body     `xml:"body"`
	}

	outlines := make([]outline, 0, len(feeds))
	for _, f := range feeds {
		outlines = append(outlines, outline{Text: f.Name, Title: f.Name, Type: "rss", XMLUrl: f.URL})
	}

	doc := opml{
		Version: "2.0",
		Head:    head{Title: "Useless Facts Sources", DateCreated: time.Now().Format(time.RFC1123Z)},
		Body:    body{Outlines: outlines},
	}
	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}
	return xml.Header + string(output), nil
}
