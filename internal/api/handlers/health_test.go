package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"

	"github.com/chzzmarket/market-api/internal/api/handlers"
)

func TestHealthz(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(map[string]handlers.CheckFunc{
		"database": func(context.Context) error { return errors.New("down") },
	})

	_, api := humatest.New(t)
	handlers.RegisterHealthRoutes(api, h)

	resp := api.Get("/healthz")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"ok"`)
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	refused := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]handlers.CheckFunc
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "ready when every check passes",
			checks:     map[string]handlers.CheckFunc{"database": ok, "cache": ok},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"ready"`, `"database":"ok"`, `"cache":"ok"`},
		},
		{
			name:       "unavailable when the database fails",
			checks:     map[string]handlers.CheckFunc{"database": refused, "cache": ok},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   []string{`"status":"unavailable"`, `"database":"connection refused"`, `"cache":"ok"`},
		},
		{
			name:       "ready with no checks",
			checks:     nil,
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"ready"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewHealthHandler(tt.checks)

			_, api := humatest.New(t)
			handlers.RegisterHealthRoutes(api, h)

			resp := api.Get("/readyz")
			assert.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}
