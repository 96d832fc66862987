// Package openapi configures the generated OpenAPI 3.1 document and serves
// the Swagger UI for it.
package openapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
)

// SpecPath is where Huma serves the generated document.
const SpecPath = "/openapi"

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Marketplace API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "` + SpecPath + `.json",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// Config returns the Huma configuration of the marketplace API, with the
// bearer security scheme used by authenticated operations.
func Config(version string) huma.Config {
	cfg := huma.DefaultConfig("Marketplace API", version)
	cfg.OpenAPIPath = SpecPath
	cfg.Info.Description = "Pre-registration listings, product details and owner commands of the marketplace."
	if cfg.Components.SecuritySchemes == nil {
		cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{}
	}
	cfg.Components.SecuritySchemes["bearer"] = &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}
	return cfg
}

// RegisterRoutes adds the Swagger UI endpoints to the Echo instance.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/swagger/index.html", serveUI)
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

// Write encodes the OpenAPI document of api as "json" or "yaml".
func Write(w io.Writer, api huma.API, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(api.OpenAPI(), "", "  ")
	case "yaml":
		data, err = api.OpenAPI().YAML()
	default:
		return fmt.Errorf("unknown spec format %q (want json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("encoding openapi %s: %w", format, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing openapi %s: %w", format, err)
	}
	return nil
}

func serveUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerUIHTML)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
