// Package metrics defines Prometheus metrics for the marketplace API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "market"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last /readyz probe succeeded (1) or failed (0).",
	})
)

// Listing query metrics. The listing label is one of category, owner, liked
// or details.
var (
	ListingQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_queries_total",
		Help:      "Total number of product listing queries by listing and sort key.",
	}, []string{"listing", "sort"})

	ListingQueryErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_query_errors_total",
		Help:      "Total number of failed product listing queries.",
	}, []string{"listing"})

	ListingQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "listing_query_duration_seconds",
		Help:      "Duration of product listing queries in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"listing"})
)

// Image metrics.
var (
	ImageCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_cache_hits_total",
		Help:      "Total number of product image path cache hits.",
	})

	ImageCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_cache_misses_total",
		Help:      "Total number of product image path cache misses.",
	})

	ImageUploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_uploads_total",
		Help:      "Total number of product image uploads by result.",
	}, []string{"result"})

	ImageDeletionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_deletions_total",
		Help:      "Total number of queued image deletions processed by result.",
	}, []string{"result"})

	ImageDeletionQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "image_deletion_queue_depth",
		Help:      "Number of image deletions waiting in the queue.",
	})

	ImageSweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "image_sweep_duration_seconds",
		Help:      "Duration of image deletion sweeps in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Product command metrics.
var (
	ProductCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_commands_total",
		Help:      "Total number of product commands by command and result.",
	}, []string{"command", "result"})
)
