package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/uselessfacts/pkg/config"
	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/feed"
	"github.com/umputun/uselessfacts/pkg/metrics"
	"github.com/umputun/uselessfacts/pkg/search"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/searcher.go -pkg mocks -skip-ensure -fmt goimports . Searcher
//go:generate moq -out mocks/articles.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/facts.go -pkg mocks -skip-ensure -fmt goimports . FactService
//go:generate moq -out mocks/ingester.go -pkg mocks -skip-ensure -fmt goimports . Ingester

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	search    Searcher
	articles  ArticleStore
	facts     FactService
	ingester  Ingester
	generator *feed.Generator
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Deps are the services the server calls into
type Deps struct {
	Search   Searcher
	Articles ArticleStore
	Facts    FactService
	Ingester Ingester
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
	GetFeeds() []config.Feed
	GetAdmin() config.AdminConfig
}

// Searcher runs article and topic searches, all methods fail open with empty results
type Searcher interface {
	ArticlesByTopics(ctx context.Context, topics []string, opts domain.MatchOptions) search.Result
	SearchArticlesByText(ctx context.Context, query string, opts domain.TextOptions) search.Result
	RecentArticles(ctx context.Context, window *int, limit int) search.Result
	Topics(ctx context.Context, req search.TopicsRequest) search.TopicsResult
	SuggestTopics(ctx context.Context, query string, limit int) []domain.Topic
}

// ArticleStore provides single article lookups and table stats
type ArticleStore interface {
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	GetArticleTopics(ctx context.Context, articleID int64) ([]domain.ArticleTopic, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

// FactService generates and rates facts
type FactService interface {
	Realtime(ctx context.Context, topics []string, window *int) (*domain.Fact, error)
	List(ctx context.Context, limit, offset int) ([]domain.Fact, error)
	Get(ctx context.Context, id string) (*domain.Fact, error)
	Rate(ctx context.Context, id string, vote domain.Vote) (*domain.Fact, error)
}

// Ingester stores posted articles the same way feed items are stored
type Ingester interface {
	Ingest(ctx context.Context, article *domain.Article, topics []domain.ArticleTopic) (bool, error)
}

// New initializes a new server instance
func New(cfg ConfigProvider, deps Deps, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		search:    deps.Search,
		articles:  deps.Articles,
		facts:     deps.Facts,
		ingester:  deps.Ingester,
		generator: feed.NewGenerator(cfg.GetBaseURL()),
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	metrics.Register()

	s.router.Use(rest.AppInfo("uselessfacts", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
	s.router.Use(metrics.Middleware)          // the matched pattern is known after the mux ran
	s.router.Use(recoverJSON)                 // inside metrics so a recovered panic is counted as 500
}

// recoverJSON turns a handler panic into the 500 json error envelope.
// rest.Recoverer stays outside as a backstop for panics in the middleware chain itself.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler { //nolint:errorlint // sentinel value passed to panic, not a wrapped error
				panic(rvr)
			}
			lgr.Printf("[WARN] request panic, %s %s: %v\n%s", r.Method, r.URL.Path, rvr, debug.Stack())
			RenderError(w, r, http.StatusInternalServerError, "internal error", fmt.Errorf("%v", rvr))
		}()
		next.ServeHTTP(w, r)
	})
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /articles", s.articlesHandler)
		r.HandleFunc("GET /articles/search", s.searchArticlesHandler)
		r.HandleFunc("GET /articles/{id}", s.articleHandler)

		r.HandleFunc("GET /topics", s.topicsHandler)
		r.HandleFunc("POST /topics", s.suggestTopicsHandler)

		r.HandleFunc("GET /facts", s.listFactsHandler)
		r.HandleFunc("POST /facts/realtime", s.realtimeFactHandler)
		r.HandleFunc("GET /facts/{id}", s.getFactHandler)
		r.HandleFunc("POST /facts/{id}/rate", s.rateFactHandler)

		r.Mount("/admin").Route(func(admin *routegroup.Bundle) {
			admin.Use(s.adminAuth)
			admin.HandleFunc("POST /articles", s.importArticleHandler)
		})
	})

	s.router.HandleFunc("GET /rss/{topic}", s.rssFeedHandler)
	s.router.HandleFunc("GET /opml", s.opmlHandler)
	s.router.Handle("GET /metrics", metrics.Handler())
}

// statusHandler returns server status with table counts
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	stats, err := s.articles.Stats(r.Context())
	if err != nil {
		lgr.Printf("[WARN] failed to get stats: %v", err)
	} else {
		status["stats"] = stats
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// errorResponse is the JSON error envelope
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error envelope, the error goes to details
func RenderError(w http.ResponseWriter, r *http.Request, code int, msg string, err error) {
	resp := errorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	if code >= http.StatusInternalServerError {
		lgr.Printf("[ERROR] %s %s: %s: %v", r.Method, r.URL.Path, msg, err)
	}
	RenderJSON(w, r, code, resp)
}
