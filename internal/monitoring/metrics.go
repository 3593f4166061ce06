package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ahb_http_requests_total",
			Help: "Number of HTTP requests handled, by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ahb_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ahb_recommendations_served_total",
			Help: "Recommendation results computed, by result type.",
		},
		[]string{"type"},
	)

	RecommendationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ahb_recommendation_cache_hits_total",
			Help: "Recommendation requests answered from cache.",
		},
	)

	NotificationsFannedOut = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ahb_notifications_fanned_out_total",
			Help: "Notifications created for post owners, by type.",
		},
		[]string{"type"},
	)

	TagSuggestionFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ahb_tag_suggestion_fallbacks_total",
			Help: "Tag suggestions answered by the keyword fallback.",
		},
	)
)
