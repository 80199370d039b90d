package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/search"
)

const (
	defaultTopicWindow  = 24
	maxTopicWindow      = 168
	defaultTopicLimit   = 20
	maxTopicLimit       = 50
	defaultSuggestLimit = 10
)

type topicsResponse struct {
	Topics   []domain.Topic `json:"topics"`
	Metadata topicsMetadata `json:"metadata"`
}

type topicsMetadata struct {
	TimeWindow  int                `json:"timeWindow"`
	Limit       int                `json:"limit"`
	EntityTypes []string           `json:"entityTypes,omitempty"`
	Diverse     bool               `json:"diverse"`
	Randomized  bool               `json:"randomized"`
	Source      domain.TopicSource `json:"source"`
	Total       int                `json:"total"`
}

type suggestRequest struct {
	Query string `json:"query"`
	Limit *int   `json:"limit,omitempty"`
}

type suggestResponse struct {
	Suggestions []domain.Topic `json:"suggestions"`
	Query       string         `json:"query"`
}

// GET /api/topics?timeWindow=24&limit=20&entityType=PERSON&topicTypes=a,b&diverse=true&_t=123
func (s *Server) topicsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	window, err := intParam(q, "timeWindow", defaultTopicWindow, 1, maxTopicWindow)
	if err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid timeWindow", err)
		return
	}
	limit, err := intParam(q, "limit", defaultTopicLimit, 1, maxTopicLimit)
	if err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid limit", err)
		return
	}
	diverse, err := boolParam(q, "diverse", false)
	if err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid diverse", err)
		return
	}

	types := splitList(q.Get("topicTypes"))
	if et := strings.TrimSpace(q.Get("entityType")); et != "" {
		types = append(types, et)
	}
	_, randomize := q["_t"] // cache buster, any value asks for a shuffled pool

	res := s.search.Topics(r.Context(), search.TopicsRequest{
		TimeWindow:  window,
		Limit:       limit,
		EntityTypes: types,
		Diverse:     diverse,
		Randomize:   randomize,
	})

	RenderJSON(w, r, http.StatusOK, topicsResponse{
		Topics: res.Topics,
		Metadata: topicsMetadata{
			TimeWindow:  window,
			Limit:       limit,
			EntityTypes: types,
			Diverse:     diverse,
			Randomized:  randomize,
			Source:      res.Source,
			Total:       len(res.Topics),
		},
	})
}

// POST /api/topics {"query": "spa", "limit": 10}
func (s *Server) suggestTopicsHandler(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	query := strings.TrimSpace(req.Query)
	if utf8.RuneCountInString(query) < search.MinSuggestLength {
		RenderError(w, r, http.StatusBadRequest, "invalid query", errTooShort("query", search.MinSuggestLength))
		return
	}
	limit := defaultSuggestLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	if limit < 1 || limit > maxTopicLimit {
		RenderError(w, r, http.StatusBadRequest, "invalid limit", errOutOfRange("limit", limit, 1, maxTopicLimit))
		return
	}

	RenderJSON(w, r, http.StatusOK, suggestResponse{
		Suggestions: s.search.SuggestTopics(r.Context(), query, limit),
		Query:       query,
	})
}
