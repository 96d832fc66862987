package main

import "errors"

// KnownMetrics is the set of metric names exported by market-server plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"market_http_request_duration_seconds": true,
	"market_http_requests_total":           true,

	// Health metrics.
	"market_healthz_up": true,
	"market_readyz_up":  true,

	// Listing query metrics.
	"market_listing_queries_total":          true,
	"market_listing_query_errors_total":     true,
	"market_listing_query_duration_seconds": true,

	// Image metrics.
	"market_image_cache_hits_total":       true,
	"market_image_cache_misses_total":     true,
	"market_image_uploads_total":          true,
	"market_image_deletions_total":        true,
	"market_image_deletion_queue_depth":   true,
	"market_image_sweep_duration_seconds": true,

	// Product command metrics.
	"market_product_commands_total": true,

	// Recording rules.
	"market:http_requests:rate5m":           true,
	"market:http_errors:rate5m":             true,
	"market:listing_queries:rate5m":         true,
	"market:listing_query_errors:rate5m":    true,
	"market:image_cache_hit_ratio:rate5m":   true,
	"market:image_deletion_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
