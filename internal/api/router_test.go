package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chzzmarket/market-api/internal/api"
	"github.com/chzzmarket/market-api/internal/api/handlers"
	handlerMocks "github.com/chzzmarket/market-api/internal/api/handlers/mocks"
	"github.com/chzzmarket/market-api/internal/auth"
	"github.com/chzzmarket/market-api/internal/catalog"
	domain "github.com/chzzmarket/market-api/pkg/types"
)

func newRouter(t *testing.T, checks map[string]handlers.CheckFunc) (http.Handler, *handlerMocks.MockProductService, string) {
	t.Helper()

	tokens, err := auth.NewTokens("0123456789abcdef0123456789abcdef", "market-api")
	require.NoError(t, err)
	token, err := tokens.Issue(5)
	require.NoError(t, err)

	ms := handlerMocks.NewMockProductService(t)
	e, _ := api.NewRouter(api.Deps{
		Products: ms,
		Checks:   checks,
		Tokens:   tokens,
		Version:  "test",
	})
	return e, ms, token
}

func serve(h http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	t.Parallel()

	h, _, _ := newRouter(t, map[string]handlers.CheckFunc{
		"database": func(context.Context) error { return nil },
	})

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "liveness", target: "/healthz", wantStatus: http.StatusOK, wantBody: `"status":"ok"`},
		{name: "readiness", target: "/readyz", wantStatus: http.StatusOK, wantBody: `"database":"ok"`},
		{name: "prometheus", target: "/metrics", wantStatus: http.StatusOK, wantBody: "market_"},
		{name: "openapi document", target: "/openapi.json", wantStatus: http.StatusOK, wantBody: `"list-products"`},
		{name: "swagger ui", target: "/swagger/index.html", wantStatus: http.StatusOK, wantBody: "/openapi.json"},
		{name: "swagger redirect", target: "/swagger", wantStatus: http.StatusMovedPermanently},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(h, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRouter_ReadinessFailure(t *testing.T) {
	t.Parallel()

	h, _, _ := newRouter(t, map[string]handlers.CheckFunc{
		"database": func(context.Context) error { return errors.New("connection refused") },
	})

	rec := serve(h, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_ProductRoutes(t *testing.T) {
	t.Parallel()

	t.Run("viewer flows from token to service", func(t *testing.T) {
		t.Parallel()

		h, ms, token := newRouter(t, nil)
		ms.EXPECT().
			GetDetails(mock.Anything, int64(7), mock.MatchedBy(func(v *int64) bool {
				return v != nil && *v == 5
			})).
			Return(&domain.ProductDetails{ID: 7, Name: "Keyboard", IsLiked: true}, nil).
			Once()

		rec := serve(h, http.MethodGet, "/api/v1/products/7", token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"is_liked":true`)
	})

	t.Run("anonymous like is rejected", func(t *testing.T) {
		t.Parallel()

		h, _, _ := newRouter(t, nil)
		rec := serve(h, http.MethodPost, "/api/v1/products/7/likes", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token is rejected on public routes", func(t *testing.T) {
		t.Parallel()

		h, _, _ := newRouter(t, nil)
		rec := serve(h, http.MethodGet, "/api/v1/products?category=OTHER", "garbage")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("auction conflict", func(t *testing.T) {
		t.Parallel()

		h, ms, token := newRouter(t, nil)
		ms.EXPECT().
			StartAuction(mock.Anything, int64(5), int64(7)).
			Return(nil, catalog.ErrAlreadyInAuction).
			Once()

		rec := serve(h, http.MethodPost, "/api/v1/products/7/auction", token)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
