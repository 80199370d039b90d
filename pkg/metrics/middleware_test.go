package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	Register()
	router := routegroup.New(http.NewServeMux())
	router.Use(Middleware)
	router.HandleFunc("GET /items/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "bad" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /items/{id}", "200"))
	for _, id := range []string{"1", "2", "bad"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/items/"+id, http.NoBody))
	}

	assert.InDelta(t, before+2, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /items/{id}", "200")), 0.001)
	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /items/{id}", "400")), 1.0)
}

func TestStatusWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rr, status: http.StatusOK}

	sw.WriteHeader(http.StatusNotFound)
	sw.WriteHeader(http.StatusInternalServerError) // ignored by status capture
	assert.Equal(t, http.StatusNotFound, sw.status)
	assert.Equal(t, rr, sw.Unwrap())

	sw2 := &statusWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	_, err := sw2.Write([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, sw2.status)
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "unknown"},
		{"GET /api/facts", "GET /api/facts"},
		{"GET /rss/{topic}", "GET /rss/{topic}"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, normalizePath(tc.input), tc.input)
	}
}

func TestRegisterAndHandler(t *testing.T) {
	Register()
	Register() // second call is a no-op

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "go_goroutines"))
}
