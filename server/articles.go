package server

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/search"
)

const (
	defaultArticleLimit = 20
	maxArticleLimit     = 100
	minSearchQuery      = 3
)

// sort orders of the article list
const (
	sortByScore = "score"
	sortByTime  = "time"
)

type articlesResponse struct {
	Articles []domain.ArticleWithRelevance `json:"articles"`
	Metadata articlesMetadata              `json:"metadata"`
}

type articlesMetadata struct {
	Total      int               `json:"total"`
	Topics     []string          `json:"topics,omitempty"`
	Query      string            `json:"query,omitempty"`
	TimeFilter domain.TimeFilter `json:"timeFilter"`
	TopicTypes []string          `json:"topicTypes,omitempty"`
	SortBy     string            `json:"sortBy,omitempty"`
	Strategy   search.Strategy   `json:"strategy"`
}

type articleResponse struct {
	Article *domain.Article       `json:"article"`
	Topics  []domain.ArticleTopic `json:"topics"`
}

// GET /api/articles?topics=a,b&timeFilter=7d&topicTypes=T1,T2&sortBy=score&limit=20
// without topics the latest articles are returned, sorted by time
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tf, err := timeFilterParam(q, domain.TimeFilter7d)
	if err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid timeFilter", err)
		return
	}
	limit, err := intParam(q, "limit", defaultArticleLimit, 1, maxArticleLimit)
	if err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid limit", err)
		return
	}
	sortBy := strings.TrimSpace(q.Get("sortBy"))
	switch sortBy {
	case "":
		sortBy = sortByScore
	case sortByScore, sortByTime:
	default:
		RenderError(w, r, http.StatusBadRequest, "invalid sortBy", errUnsupported("sortBy", sortBy, sortByTime, sortByScore))
		return
	}

	topics := splitList(q.Get("topics"))
	types := splitList(q.Get("topicTypes"))

	var res search.Result
	if len(topics) == 0 {
		res = s.search.RecentArticles(r.Context(), tf.Hours(), limit)
		sortBy = sortByTime
	} else {
		opts := domain.MatchOptions{Limit: limit, TimeWindow: tf.Hours(), EntityTypes: types}
		res = s.search.ArticlesByTopics(r.Context(), topics, opts)
	}
	sortArticles(res.Articles, sortBy)

	RenderJSON(w, r, http.StatusOK, articlesResponse{
		Articles: res.Articles,
		Metadata: articlesMetadata{
			Total:      len(res.Articles),
			Topics:     topics,
			TimeFilter: tf,
			TopicTypes: types,
			SortBy:     sortBy,
			Strategy:   res.Strategy,
		},
	})
}

// GET /api/articles/search?q=text&timeFilter=all&limit=20
func (s *Server) searchArticlesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := strings.TrimSpace(q.Get("q"))
	if utf8.RuneCountInString(query) < minSearchQuery {
		RenderError(w, r, http.StatusBadRequest, "invalid query",
			errTooShort("q", minSearchQuery))
		return
	}
	tf, err := timeFilterParam(q, domain.TimeFilterAll)
	if err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid timeFilter", err)
		return
	}
	limit, err := intParam(q, "limit", defaultArticleLimit, 1, maxArticleLimit)
	if err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid limit", err)
		return
	}

	res := s.search.SearchArticlesByText(r.Context(), query, domain.TextOptions{TimeWindow: tf.Hours(), Limit: limit})
	RenderJSON(w, r, http.StatusOK, articlesResponse{
		Articles: res.Articles,
		Metadata: articlesMetadata{
			Total:      len(res.Articles),
			Query:      query,
			TimeFilter: tf,
			Strategy:   res.Strategy,
		},
	})
}

// GET /api/articles/{id}
func (s *Server) articleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		RenderError(w, r, http.StatusBadRequest, "invalid article id", err)
		return
	}

	article, err := s.articles.GetArticle(r.Context(), id)
	if err != nil || article == nil {
		if err != nil {
			lgr.Printf("[WARN] failed to get article %d: %v", id, err)
		}
		RenderError(w, r, http.StatusNotFound, "article not found", nil)
		return
	}

	topics, err := s.articles.GetArticleTopics(r.Context(), id)
	if err != nil {
		lgr.Printf("[WARN] failed to get topics of article %d: %v", id, err)
	}
	if topics == nil {
		topics = []domain.ArticleTopic{}
	}
	RenderJSON(w, r, http.StatusOK, articleResponse{Article: article, Topics: topics})
}

// sortArticles orders by relevance or by publication time, newest first, keeping the order of ties
func sortArticles(articles []domain.ArticleWithRelevance, sortBy string) {
	if sortBy == sortByTime {
		sort.SliceStable(articles, func(i, j int) bool { return articles[i].PublishedAt.After(articles[j].PublishedAt) })
		return
	}
	sort.SliceStable(articles, func(i, j int) bool { return articles[i].RelevanceScore > articles[j].RelevanceScore })
}
