package api

import (
	"net/http"
	"sync"

	"chat-agent-service/internal/api/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter configures HTTP routes
func SetupRouter(handler *handlers.Handler, logger *zap.Logger) *mux.Router {
	router := mux.NewRouter()

	router.Use(RequestIDMiddleware)
	router.Use(func(next http.Handler) http.Handler {
		return LoggingMiddleware(logger, next)
	})

	// Health check
	router.HandleFunc("/health", handler.HealthHandler).Methods("GET")

	// Chat endpoint: JSON, SSE or WebSocket depending on the request
	router.HandleFunc("/chat", handler.ChatHandler).Methods("POST", "GET")

	// Direct web search endpoint
	router.HandleFunc("/search", handler.SearchHandler).Methods("POST")

	// Metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	registerMetrics()

	return router
}

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

var registerOnce sync.Once

func registerMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequestsTotal)
		prometheus.MustRegister(httpRequestDuration)
	})
}
