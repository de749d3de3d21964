package api

import (
	"saas-economics/core/output"
	"saas-economics/core/types"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

// ErrorBody carries the error type and message
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProjectionResponse is returned by POST /v1/projection
type ProjectionResponse struct {
	Projection types.ProjectionResult `json:"projection"`
	Metadata   output.Metadata        `json:"metadata"`
}

// ScenariosResponse is returned by POST /v1/scenarios
type ScenariosResponse struct {
	Growth   []types.ScenarioResult `json:"growth"`
	Pricing  []types.ScenarioResult `json:"pricing"`
	Metadata output.Metadata        `json:"metadata"`
}

// AdviceResponse is returned by POST /v1/advice
type AdviceResponse struct {
	Advice   types.AdviceBundle `json:"advice"`
	Messages output.AdviceText  `json:"messages"`
	Metadata output.Metadata    `json:"metadata"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is returned by GET /version
type VersionResponse struct {
	Version string `json:"version"`
}
