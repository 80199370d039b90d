package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/uselessfacts/pkg/config"
	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/facts"
)

func TestServer_listFactsHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		env := newTestEnv(t, config.AdminConfig{})
		env.facts.ListFunc = func(ctx context.Context, limit, offset int) ([]domain.Fact, error) {
			return []domain.Fact{{ID: "f1", Text: "Octopuses have three hearts."}}, nil
		}

		w := env.do(http.MethodGet, "/api/facts?limit=5&offset=10", "")
		require.Equal(t, http.StatusOK, w.Code)
		calls := env.facts.ListCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, 5, calls[0].Limit)
		assert.Equal(t, 10, calls[0].Offset)
		assert.Contains(t, w.Body.String(), "three hearts")
	})

	t.Run("empty list", func(t *testing.T) {
		env := newTestEnv(t, config.AdminConfig{})
		env.facts.ListFunc = func(ctx context.Context, limit, offset int) ([]domain.Fact, error) { return nil, nil }
		w := env.do(http.MethodGet, "/api/facts", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"facts":[]`)
		assert.Equal(t, 20, env.facts.ListCalls()[0].Limit)
	})

	t.Run("store error", func(t *testing.T) {
		env := newTestEnv(t, config.AdminConfig{})
		env.facts.ListFunc = func(ctx context.Context, limit, offset int) ([]domain.Fact, error) {
			return nil, errors.New("disk full")
		}
		w := env.do(http.MethodGet, "/api/facts", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"details":"disk full"`)
	})

	t.Run("bad offset", func(t *testing.T) {
		env := newTestEnv(t, config.AdminConfig{})
		w := env.do(http.MethodGet, "/api/facts?offset=-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_getFactHandler(t *testing.T) {
	env := newTestEnv(t, config.AdminConfig{})
	env.facts.GetFunc = func(ctx context.Context, id string) (*domain.Fact, error) {
		if id == "missing" {
			return nil, fmt.Errorf("fact %s: %w", id, domain.ErrNotFound)
		}
		return &domain.Fact{ID: id, Text: "Bananas are berries."}, nil
	}

	w := env.do(http.MethodGet, "/api/facts/abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	var fact domain.Fact
	require.NoError(t, jsonDecode(w, &fact))
	assert.Equal(t, "abc", fact.ID)

	w = env.do(http.MethodGet, "/api/facts/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_rateFactHandler(t *testing.T) {
	env := newTestEnv(t, config.AdminConfig{})
	env.facts.RateFunc = func(ctx context.Context, id string, vote domain.Vote) (*domain.Fact, error) {
		if id == "missing" {
			return nil, domain.ErrNotFound
		}
		return &domain.Fact{ID: id, Upvotes: 1}, nil
	}

	w := env.do(http.MethodPost, "/api/facts/abc/rate", `{"vote":"UP"}`)
	require.Equal(t, http.StatusOK, w.Code)
	calls := env.facts.RateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "abc", calls[0].ID)
	assert.Equal(t, domain.VoteUp, calls[0].Vote)

	w = env.do(http.MethodPost, "/api/facts/abc/rate", `{"vote":"meh"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = env.do(http.MethodPost, "/api/facts/abc/rate", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, env.facts.RateCalls(), 1)

	w = env.do(http.MethodPost, "/api/facts/missing/rate", `{"vote":"down"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_realtimeFactHandler(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "created", body: `{"topics":["octopus"],"timeFilter":"30d"}`, status: http.StatusCreated},
		{name: "no topics", body: `{"topics":[]}`, err: facts.ErrNoTopics, status: http.StatusBadRequest},
		{name: "no sources", body: `{"topics":["zzz"]}`, err: fmt.Errorf("topics [zzz]: %w", facts.ErrNoSources), status: http.StatusNotFound},
		{name: "llm down", body: `{"topics":["octopus"]}`, err: errors.New("write fact: timeout"), status: http.StatusInternalServerError},
		{name: "bad time filter", body: `{"topics":["octopus"],"timeFilter":"1y"}`, status: http.StatusBadRequest},
		{name: "bad body", body: `[`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.AdminConfig{})
			env.facts.RealtimeFunc = func(ctx context.Context, topics []string, window *int) (*domain.Fact, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return &domain.Fact{ID: "f1", Text: "Octopuses have three hearts.", Topics: topics}, nil
			}

			w := env.do(http.MethodPost, "/api/facts/realtime", tt.body)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusCreated {
				calls := env.facts.RealtimeCalls()
				require.Len(t, calls, 1)
				require.NotNil(t, calls[0].Window)
				assert.Equal(t, 720, *calls[0].Window)
				assert.Contains(t, w.Body.String(), "three hearts")
			}
		})
	}
}
