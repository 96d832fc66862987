package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// requestIDKey is the request context key of the request ID.
type requestIDKey struct{}

// RequestID returns the request ID stored by RequestLog, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// probePaths are logged once while healthy. Every failure is logged, and
// the first success after a failure is logged again.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured
// fields. It reuses the caller's X-Request-ID or generates one, echoes it
// in the response header and stores it on the request context.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu      sync.Mutex
		healthy = make(map[string]bool)
	)

	// quiet reports whether a probe result repeats a logged success.
	quiet := func(path string, ok bool) bool {
		if _, probe := probePaths[path]; !probe {
			return false
		}
		mu.Lock()
		defer mu.Unlock()
		was := healthy[path]
		healthy[path] = ok
		return ok && was
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)
			c.SetRequest(c.Request().WithContext(
				context.WithValue(c.Request().Context(), requestIDKey{}, reqID),
			))

			err := next(c)

			path := c.Request().URL.Path
			status := responseStatus(c, err)
			if quiet(path, status < 400) {
				return err
			}

			level := slog.LevelInfo
			switch _, probe := probePaths[path]; {
			case status >= 500 && !probe:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"route", c.Path(),
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}
