package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/chzzmarket/market-api/internal/api/middleware"
	"github.com/chzzmarket/market-api/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		target     string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "records 200 response by route",
			method: http.MethodGet,
			route:  "/api/v1/products/:id",
			target: "/api/v1/products/42",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]int{"product_id": 42})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "records handler error status",
			method: http.MethodGet,
			route:  "/api/v1/users/:nickname/products",
			target: "/api/v1/users/ghost/products",
			handler: func(_ echo.Context) error {
				return echo.NewHTTPError(http.StatusNotFound, "user not found")
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "records POST request",
			method: http.MethodPost,
			route:  "/api/v1/products/:id/likes",
			target: "/api/v1/products/7/likes",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusCreated)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			statusStr := strconv.Itoa(tt.wantStatus)

			counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			m := &io_prometheus_client.Metric{}
			require.NoError(t, counter.Write(m))
			assert.Greater(t, m.GetCounter().GetValue(), float64(0))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_HealthGauges(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		gauge  prometheus.Gauge
		want   float64
	}{
		{name: "healthz up", path: "/healthz", status: http.StatusOK, gauge: metrics.HealthzUp, want: 1},
		{name: "readyz down", path: "/readyz", status: http.StatusServiceUnavailable, gauge: metrics.ReadyzUp, want: 0},
		{name: "readyz up", path: "/readyz", status: http.StatusOK, gauge: metrics.ReadyzUp, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.GET(tt.path, func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, tt.path, strconv.Itoa(tt.status)))

			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.InDelta(t, tt.want, testutil.ToFloat64(tt.gauge), 0)
			after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, tt.path, strconv.Itoa(tt.status)))
			assert.InDelta(t, before, after, 0, "probe requests are not counted")
		})
	}
}
