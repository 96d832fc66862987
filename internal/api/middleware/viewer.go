package middleware

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/chzzmarket/market-api/internal/auth"
)

// Viewer returns Huma middleware that resolves the caller from a bearer
// token and stores the user ID on the request context. Requests without an
// Authorization header continue anonymously. A header that is not a valid
// bearer token is rejected with 401, even on public operations.
func Viewer(api huma.API, tokens *auth.Tokens) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := strings.TrimSpace(ctx.Header("Authorization"))
		if header == "" {
			next(ctx)
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "authorization header must be a bearer token")
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid token")
			return
		}

		next(huma.WithContext(ctx, auth.WithViewer(ctx.Context(), userID)))
	}
}
