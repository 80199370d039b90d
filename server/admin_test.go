package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/uselessfacts/pkg/config"
	"github.com/umputun/uselessfacts/pkg/domain"
)

func TestServer_importArticleHandler(t *testing.T) {
	admin := config.AdminConfig{User: "admin", Password: "secret"}
	post := func(env *testEnv, body string, auth bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/articles", strings.NewReader(body))
		if auth {
			req.SetBasicAuth("admin", "secret")
		}
		w := httptest.NewRecorder()
		env.srv.router.ServeHTTP(w, req)
		return w
	}

	t.Run("created with topics", func(t *testing.T) {
		env := newTestEnv(t, admin)
		env.ingester.IngestFunc = func(ctx context.Context, article *domain.Article, topics []domain.ArticleTopic) (bool, error) {
			article.ID = 17
			return true, nil
		}

		body := `{"title":" Mars rover ","content":"news","url":"https://example.com/mars","source":"NASA",
			"topics":[{"text":"Mars","type":"location","weight":1.7,"confidence":0.9},{"text":" "},{"text":"rover"}]}`
		w := post(env, body, true)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"created":true,"id":17,"url":"https://example.com/mars"}`, w.Body.String())

		calls := env.ingester.IngestCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "Mars rover", calls[0].Article.Title)
		assert.False(t, calls[0].Article.PublishedAt.IsZero())
		assert.Equal(t, []domain.ArticleTopic{
			{EntityText: "Mars", EntityType: domain.EntityLocation, TFIDFScore: 1, NERConfidence: 0.9},
			{EntityText: "rover", EntityType: domain.EntityConcept},
		}, calls[0].Topics)
	})

	t.Run("duplicate", func(t *testing.T) {
		env := newTestEnv(t, admin)
		env.ingester.IngestFunc = func(ctx context.Context, article *domain.Article, topics []domain.ArticleTopic) (bool, error) {
			return false, nil
		}
		w := post(env, `{"title":"t","url":"https://example.com/a"}`, true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"created":false`)
	})

	t.Run("ingest error", func(t *testing.T) {
		env := newTestEnv(t, admin)
		env.ingester.IngestFunc = func(ctx context.Context, article *domain.Article, topics []domain.ArticleTopic) (bool, error) {
			return false, errors.New("store article: database is locked")
		}
		w := post(env, `{"title":"t","url":"https://example.com/a"}`, true)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "database is locked")
	})

	t.Run("validation", func(t *testing.T) {
		env := newTestEnv(t, admin)
		for _, body := range []string{`{"title":"t"}`, `{"url":"https://example.com/a"}`, `nope`} {
			w := post(env, body, true)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
		assert.Empty(t, env.ingester.IngestCalls())
	})

	t.Run("no credentials", func(t *testing.T) {
		env := newTestEnv(t, admin)
		w := post(env, `{"title":"t","url":"https://example.com/a"}`, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, env.ingester.IngestCalls())
	})

	t.Run("disabled without password", func(t *testing.T) {
		env := newTestEnv(t, config.AdminConfig{User: "admin"})
		w := post(env, `{"title":"t","url":"https://example.com/a"}`, true)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, env.ingester.IngestCalls())
	})
}
