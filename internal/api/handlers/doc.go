// Package handlers implements the HTTP handlers of the marketplace API.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// ReadinessResponse reports the state of each backing service.
type ReadinessResponse struct {
	Status string            `json:"status"           example:"ready"`
	Checks map[string]string `json:"checks,omitempty"`
}
