package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Tracing returns Echo middleware that extracts the incoming trace context,
// starts a server span per request and records the OpenTelemetry HTTP server
// metrics. Spans are named "METHOD route" once the route is known.
// Operational paths are not traced.
func Tracing(service string, opts ...otelhttp.Option) echo.MiddlewareFunc {
	opts = append([]otelhttp.Option{
		otelhttp.WithFilter(func(r *http.Request) bool {
			_, skip := operationalPaths[r.URL.Path]
			return !skip
		}),
	}, opts...)
	wrap := echo.WrapMiddleware(otelhttp.NewMiddleware(service, opts...))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return wrap(func(c echo.Context) error {
			if route := c.Path(); route != "" {
				span := trace.SpanFromContext(c.Request().Context())
				span.SetName(c.Request().Method + " " + route)
				span.SetAttributes(attribute.String("http.route", route))
			}
			return next(c)
		})
	}
}
