// Package middleware provides the Echo and Huma middleware of the
// marketplace API.
package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/chzzmarket/market-api/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route, so scanners
// cannot grow the label set.
const unmatchedRoute = "unmatched"

// operationalPaths are probe, scrape and documentation endpoints. They are
// excluded from request metrics and traces.
var operationalPaths = map[string]struct{}{
	"/metrics":      {},
	"/healthz":      {},
	"/readyz":       {},
	"/openapi.json": {},
	"/openapi.yaml": {},
	"/docs":         {},
}

// healthGauges maps probe paths to their up/down gauge.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and count
// by method, route and status. Probe paths only update their health gauge.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if _, skip := operationalPaths[path]; skip {
				err := next(c)
				updateHealthGauge(path, responseStatus(c, err))
				return err
			}

			start := time.Now()
			err := next(c)
			duration := time.Since(start).Seconds()

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			status := strconv.Itoa(responseStatus(c, err))
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, status).
				Observe(duration)
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, status).
				Inc()

			return err
		}
	}
}

// responseStatus returns the status that reaches the client. Handler errors
// are only written by the Echo error handler after the middleware chain
// returns, so the committed response status is not yet set for them.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

func updateHealthGauge(path string, status int) {
	gauge, ok := healthGauges[path]
	if !ok {
		return
	}

	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
