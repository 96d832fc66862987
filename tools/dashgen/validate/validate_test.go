package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpr(t *testing.T) {
	t.Parallel()

	known := map[string]bool{
		"market_http_requests_total":           true,
		"market_http_request_duration_seconds": true,
	}

	tests := []struct {
		name        string
		expr        string
		wantErr     bool
		wantWarning bool
	}{
		{name: "known counter", expr: `sum(rate(market_http_requests_total[5m]))`},
		{
			name: "histogram bucket of a known metric",
			expr: `histogram_quantile(0.95, sum(rate(market_http_request_duration_seconds_bucket[5m])) by (le))`,
		},
		{name: "grafana interval variable", expr: `rate(market_http_requests_total[$__rate_interval])`},
		{name: "unknown metric", expr: `rate(market_missing_total[5m])`, wantWarning: true},
		{name: "syntax error", expr: `sum(rate(market_http_requests_total[5m])`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Expr("test", tt.expr, known)
			assert.Equal(t, !tt.wantErr, res.Ok(), "errors: %v", res.Errors)
			if tt.wantWarning {
				assert.NotEmpty(t, res.Warnings)
			} else {
				assert.Empty(t, res.Warnings)
			}
		})
	}
}
