package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/rest"

	"github.com/umputun/uselessfacts/pkg/domain"
)

type importRequest struct {
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	URL         string        `json:"url"`
	Source      string        `json:"source"`
	PublishedAt time.Time     `json:"published_at"`
	Topics      []importTopic `json:"topics"`
}

type importTopic struct {
	Text       string  `json:"text"`
	Type       string  `json:"type"`
	Weight     float64 `json:"weight"`
	Confidence float64 `json:"confidence"`
}

// adminAuth guards admin routes with basic auth, the routes are disabled without a configured password
func (s *Server) adminAuth(next http.Handler) http.Handler {
	admin := s.config.GetAdmin()
	if admin.Password == "" {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			RenderError(w, r, http.StatusForbidden, "admin api disabled", errors.New("admin password is not set"))
		})
	}
	return rest.BasicAuthWithUserPasswd(admin.User, admin.Password)(next)
}

// POST /api/admin/articles imports an article, topics are extracted when none given
func (s *Server) importArticleHandler(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		RenderError(w, r, http.StatusBadRequest, "invalid article", errors.New("url is required"))
		return
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "" {
		RenderError(w, r, http.StatusBadRequest, "invalid article", errors.New("title or content is required"))
		return
	}

	article := &domain.Article{
		Title:       strings.TrimSpace(req.Title),
		Content:     req.Content,
		URL:         strings.TrimSpace(req.URL),
		Source:      req.Source,
		PublishedAt: req.PublishedAt,
	}
	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now().UTC()
	}

	topics := make([]domain.ArticleTopic, 0, len(req.Topics))
	for _, t := range req.Topics {
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		entityType := strings.ToUpper(strings.TrimSpace(t.Type))
		if entityType == "" {
			entityType = domain.EntityConcept
		}
		topics = append(topics, domain.ArticleTopic{
			EntityText:    strings.TrimSpace(t.Text),
			EntityType:    entityType,
			TFIDFScore:    min(max(t.Weight, 0), 1),
			NERConfidence: min(max(t.Confidence, 0), 1),
		})
	}

	created, err := s.ingester.Ingest(r.Context(), article, topics)
	if err != nil {
		RenderError(w, r, http.StatusInternalServerError, "failed to import article", err)
		return
	}
	if !created {
		RenderJSON(w, r, http.StatusOK, map[string]any{"created": false, "url": article.URL})
		return
	}
	RenderJSON(w, r, http.StatusCreated, map[string]any{"created": true, "id": article.ID, "url": article.URL})
}
