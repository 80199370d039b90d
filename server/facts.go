package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/facts"
)

const (
	defaultFactLimit = 20
	maxFactLimit     = 100
)

type realtimeRequest struct {
	Topics     []string `json:"topics"`
	TimeFilter string   `json:"timeFilter,omitempty"`
}

type rateRequest struct {
	Vote string `json:"vote"`
}

// GET /api/facts?limit=20&offset=0
func (s *Server) listFactsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := intParam(q, "limit", defaultFactLimit, 1, maxFactLimit)
	if err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid limit", err)
		return
	}
	offset, err := intParam(q, "offset", 0, 0, math.MaxInt)
	if err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid offset", err)
		return
	}

	list, err := s.facts.List(r.Context(), limit, offset)
	if err != nil {
		RenderError(w, r, http.StatusInternalServerError, "failed to list facts", err)
		return
	}
	if list == nil {
		list = []domain.Fact{}
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"facts": list, "limit": limit, "offset": offset})
}

// GET /api/facts/{id}
func (s *Server) getFactHandler(w http.ResponseWriter, r *http.Request) {
	fact, err := s.facts.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.renderFactError(w, r, "failed to get fact", err)
		return
	}
	RenderJSON(w, r, http.StatusOK, fact)
}

// POST /api/facts/{id}/rate {"vote": "up"}
func (s *Server) rateFactHandler(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	vote, err := domain.ParseVote(req.Vote)
	if err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid vote", err)
		return
	}

	fact, err := s.facts.Rate(r.Context(), r.PathValue("id"), vote)
	if err != nil {
		s.renderFactError(w, r, "failed to rate fact", err)
		return
	}
	RenderJSON(w, r, http.StatusOK, fact)
}

// POST /api/facts/realtime {"topics": ["ai", "mars"], "timeFilter": "7d"}
func (s *Server) realtimeFactHandler(w http.ResponseWriter, r *http.Request) {
	var req realtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	tf := domain.TimeFilterAll
	if strings.TrimSpace(req.TimeFilter) != "" {
		var err error
		if tf, err = domain.ParseTimeFilter(req.TimeFilter); err != nil {
			RenderError(w, r, http.StatusBadRequest, "invalid timeFilter", err)
			return
		}
	}

	fact, err := s.facts.Realtime(r.Context(), req.Topics, tf.Hours())
	if err != nil {
		s.renderFactError(w, r, "failed to generate fact", err)
		return
	}
	RenderJSON(w, r, http.StatusCreated, fact)
}

// renderFactError maps facts and domain errors to status codes
func (s *Server) renderFactError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, facts.ErrNoTopics):
		RenderError(w, r, http.StatusBadRequest, msg, err)
	case errors.Is(err, facts.ErrNoSources), errors.Is(err, domain.ErrNotFound):
		RenderError(w, r, http.StatusNotFound, msg, err)
	default:
		RenderError(w, r, http.StatusInternalServerError, msg, err)
	}
}
