// Package api assembles the HTTP server of the marketplace: the Echo router,
// its middleware chain and the Huma operations.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/chzzmarket/market-api/api/openapi"
	"github.com/chzzmarket/market-api/internal/api/handlers"
	mw "github.com/chzzmarket/market-api/internal/api/middleware"
	"github.com/chzzmarket/market-api/internal/auth"
	"github.com/chzzmarket/market-api/pkg/logger"
)

// Deps holds what the router serves.
type Deps struct {
	Products handlers.ProductService
	Checks   map[string]handlers.CheckFunc
	// Tokens verifies bearer tokens. When nil every request is anonymous.
	Tokens  *auth.Tokens
	Log     *slog.Logger
	Limits  handlers.ProductsConfig
	Version string
	// ServiceName names the tracing instrumentation.
	ServiceName string
	TraceOpts   []otelhttp.Option
}

// NewRouter builds the Echo instance with the middleware chain, the
// operational endpoints and every API operation registered.
func NewRouter(d Deps) (*echo.Echo, huma.API) {
	if d.ServiceName == "" {
		d.ServiceName = "market-api"
	}
	if d.Log == nil {
		d.Log = logger.Discard()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		mw.RequestLog(d.Log),
		mw.Recovery(d.Log),
		mw.Metrics(),
		mw.Tracing(d.ServiceName, d.TraceOpts...),
	)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	api := humaecho.New(e, openapi.Config(d.Version))
	if d.Tokens != nil {
		api.UseMiddleware(mw.Viewer(api, d.Tokens))
	}

	handlers.RegisterHealthRoutes(api, handlers.NewHealthHandler(d.Checks))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(d.Products, d.Limits))

	return e, api
}
