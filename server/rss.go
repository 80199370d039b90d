package server

import (
	"net/http"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/uselessfacts/pkg/domain"
)

const defaultRSSLimit = 50

// rssFeedHandler serves RSS feed of articles matching a topic, GET /rss/{topic}?timeFilter=7d
func (s *Server) rssFeedHandler(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(r.PathValue("topic"))
	if topic == "" {
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}

	tf, err := timeFilterParam(r.URL.Query(), domain.TimeFilter7d)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := s.search.ArticlesByTopics(r.Context(), []string{topic}, domain.MatchOptions{Limit: defaultRSSLimit, TimeWindow: tf.Hours()})
	rss, err := s.generator.GenerateTopicRSS(topic, res.Articles)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed for %q: %v", topic, err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// opmlHandler serves the list of ingested feeds as OPML
func (s *Server) opmlHandler(w http.ResponseWriter, _ *http.Request) {
	opml, err := s.generator.GenerateOPML(s.config.GetFeeds())
	if err != nil {
		lgr.Printf("[ERROR] failed to generate OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	if _, err := w.Write([]byte(opml)); err != nil {
		lgr.Printf("[ERROR] failed to write OPML response: %v", err)
	}
}
