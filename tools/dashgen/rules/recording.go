package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata:   metadata("market-recording-rules"),
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "market-recording",
					Rules: []Rule{
						{
							Record: "market:http_requests:rate5m",
							Expr:   `sum(rate(market_http_requests_total[5m]))`,
						},
						{
							Record: "market:http_errors:rate5m",
							Expr:   `sum(rate(market_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "market:listing_queries:rate5m",
							Expr:   `sum(rate(market_listing_queries_total[5m])) by (listing)`,
						},
						{
							Record: "market:listing_query_errors:rate5m",
							Expr:   `sum(rate(market_listing_query_errors_total[5m]))`,
						},
						{
							Record: "market:image_cache_hit_ratio:rate5m",
							Expr: `sum(rate(market_image_cache_hits_total[5m])) / ` +
								`(sum(rate(market_image_cache_hits_total[5m])) + sum(rate(market_image_cache_misses_total[5m])))`,
						},
						{
							Record: "market:image_deletion_failures:rate5m",
							Expr:   `sum(rate(market_image_deletions_total{result="error"}[5m]))`,
						},
					},
				},
			},
		},
	}
}
