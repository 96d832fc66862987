package handlers

import (
	"context"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"
)

// CheckFunc probes one backing service.
type CheckFunc func(ctx context.Context) error

// HealthHandler provides liveness and readiness endpoints.
type HealthHandler struct {
	checks map[string]CheckFunc
}

// NewHealthHandler creates a HealthHandler. Readiness fails when any of the
// named checks fails.
func NewHealthHandler(checks map[string]CheckFunc) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// HealthzOutput is the liveness response.
type HealthzOutput struct {
	Body StatusResponse
}

// ReadyzOutput is the readiness response.
type ReadyzOutput struct {
	Status int
	Body   ReadinessResponse
}

// Healthz returns 200 while the process is running.
func (*HealthHandler) Healthz(_ context.Context, _ *struct{}) (*HealthzOutput, error) {
	return &HealthzOutput{Body: StatusResponse{Status: "ok"}}, nil
}

// Readyz runs every check and returns 503 if any fails.
func (h *HealthHandler) Readyz(ctx context.Context, _ *struct{}) (*ReadyzOutput, error) {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	out := &ReadyzOutput{
		Status: http.StatusOK,
		Body:   ReadinessResponse{Status: "ready", Checks: make(map[string]string, len(names))},
	}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			out.Body.Checks[name] = err.Error()
			out.Status = http.StatusServiceUnavailable
			out.Body.Status = "unavailable"
			continue
		}
		out.Body.Checks[name] = "ok"
	}
	return out, nil
}

// RegisterHealthRoutes registers the probe endpoints with the Huma API.
func RegisterHealthRoutes(api huma.API, h *HealthHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Liveness check",
		Tags:        []string{"health"},
	}, h.Healthz)

	huma.Register(api, huma.Operation{
		OperationID: "readyz",
		Method:      http.MethodGet,
		Path:        "/readyz",
		Summary:     "Readiness check",
		Description: "Returns 200 when the database and every configured backing service respond, 503 otherwise.",
		Tags:        []string{"health"},
		Errors:      []int{http.StatusServiceUnavailable},
	}, h.Readyz)
}
