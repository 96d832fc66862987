package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// market-server operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata:   metadata("market-alerts"),
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "market-alerts",
					Rules: []Rule{
						{
							Alert:  "MarketDown",
							Expr:   `absent(up{job="market-api"})`,
							For:    "2m",
							Labels: severity("critical"),
							Annotations: map[string]string{
								"summary":     "Marketplace API is down",
								"description": "The market-api job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert:  "MarketReadinessDown",
							Expr:   `market_readyz_up == 0`,
							For:    "2m",
							Labels: severity("critical"),
							Annotations: map[string]string{
								"summary":     "Marketplace API readiness check is failing",
								"description": "Database, image storage or cache has been unreachable for more than 2 minutes.",
							},
						},
						{
							Alert:  "MarketHighErrorRate",
							Expr:   `market:http_errors:rate5m / market:http_requests:rate5m > 0.05`,
							For:    "5m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the marketplace API",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert:  "MarketListingQueryErrors",
							Expr:   `market:listing_query_errors:rate5m > 0`,
							For:    "5m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "Listing queries are failing",
								"description": "Product listing queries have been failing for more than 5 minutes.",
							},
						},
						{
							Alert:  "MarketImageDeletionFailures",
							Expr:   `market:image_deletion_failures:rate5m > 0`,
							For:    "15m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "Queued image deletions are failing",
								"description": "The image sweep has not been able to delete objects from storage for 15 minutes.",
							},
						},
						{
							Alert:  "MarketDeletionQueueBacklog",
							Expr:   `market_image_deletion_queue_depth > 1000`,
							For:    "30m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "Image deletion queue is backing up",
								"description": "More than 1000 image deletions have been waiting for 30 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
