package llm

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uselessfacts",
			Name:      "llm_requests_total",
			Help:      "Total number of LLM and embedding requests",
		},
		[]string{"kind", "model", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "uselessfacts",
			Name:      "llm_request_duration_seconds",
			Help:      "LLM and embedding request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"kind", "model"},
	)

	tokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uselessfacts",
			Name:      "llm_tokens_total",
			Help:      "Total tokens consumed",
		},
		[]string{"kind", "model", "type"},
	)

	registerOnce sync.Once
)

// request kinds used as metric labels
const (
	kindEmbedding = "embedding"
	kindEntities  = "entities"
	kindFact      = "fact"
)

// RegisterMetrics registers LLM metrics with the default prometheus registry, safe to call more than once
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(requestsTotal, requestDuration, tokensTotal)
	})
}

func observe(kind, model string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	requestsTotal.WithLabelValues(kind, model, status).Inc()
	requestDuration.WithLabelValues(kind, model).Observe(time.Since(start).Seconds())
}

func recordTokens(kind, model string, prompt, completion int) {
	if prompt > 0 {
		tokensTotal.WithLabelValues(kind, model, "prompt").Add(float64(prompt))
	}
	if completion > 0 {
		tokensTotal.WithLabelValues(kind, model, "completion").Add(float64(completion))
	}
}
