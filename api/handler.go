package api

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"saas-economics/core/engine"
	"saas-economics/core/input"
	"saas-economics/core/output"
	"saas-economics/core/types"
	"saas-economics/internal/errors"
)

// maxBodyBytes bounds request bodies; inputs are fifteen numbers
const maxBodyBytes = 64 << 10

// Handler serves engine endpoints
type Handler struct {
	engine  *engine.Engine
	version string
}

// NewHandler creates a handler
func NewHandler(eng *engine.Engine, version string) *Handler {
	return &Handler{engine: eng, version: version}
}

// Estimate handles POST /v1/estimate
func (h *Handler) Estimate(c echo.Context) error {
	start := time.Now()
	in, err := bindInputs(c)
	if err != nil {
		return err
	}
	report := h.engine.Run(in)
	return c.JSON(http.StatusOK, output.NewResult(report, h.metadata(c, in, start)))
}

// EstimateQuery handles GET /v1/estimate with inputs in the query string
func (h *Handler) EstimateQuery(c echo.Context) error {
	start := time.Now()
	in := input.Normalize(input.FromValues(c.QueryParams()))
	report := h.engine.Run(in)
	return c.JSON(http.StatusOK, output.NewResult(report, h.metadata(c, in, start)))
}

// Projection handles POST /v1/projection
func (h *Handler) Projection(c echo.Context) error {
	start := time.Now()
	in, err := bindInputs(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ProjectionResponse{
		Projection: h.engine.Project(in),
		Metadata:   h.metadata(c, in, start),
	})
}

// Scenarios handles POST /v1/scenarios
func (h *Handler) Scenarios(c echo.Context) error {
	start := time.Now()
	in, err := bindInputs(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ScenariosResponse{
		Growth:   h.engine.GrowthScenarios(in),
		Pricing:  h.engine.PricingScenarios(in),
		Metadata: h.metadata(c, in, start),
	})
}

// Advice handles POST /v1/advice
func (h *Handler) Advice(c echo.Context) error {
	start := time.Now()
	in, err := bindInputs(c)
	if err != nil {
		return err
	}
	bundle := h.engine.Advise(h.engine.Metrics(in))
	return c.JSON(http.StatusOK, AdviceResponse{
		Advice:   bundle,
		Messages: output.RenderAdvice(bundle),
		Metadata: h.metadata(c, in, start),
	})
}

// Tiers handles GET /v1/tiers
func (h *Handler) Tiers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.engine.Config().Tiers)
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Version handles GET /version
func (h *Handler) Version(c echo.Context) error {
	return c.JSON(http.StatusOK, VersionResponse{Version: h.version})
}

// bindInputs decodes a JSON RawInputs body and normalizes it
func bindInputs(c echo.Context) (types.InputParameters, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes+1))
	if err != nil {
		return types.InputParameters{}, errors.Wrap(errors.TypeInput, "read request body", err)
	}
	if len(body) > maxBodyBytes {
		return types.InputParameters{}, errors.Input("request body too large")
	}
	if len(body) == 0 {
		return types.InputParameters{}, errors.Input("request body required")
	}

	raw, err := input.DecodeBytes(body, "request body", input.FormatJSON)
	if err != nil {
		return types.InputParameters{}, err
	}
	return input.Normalize(raw), nil
}

func (h *Handler) metadata(c echo.Context, in types.InputParameters, start time.Time) output.Metadata {
	return output.Metadata{
		RequestID:     RequestID(c),
		InputHash:     input.Hash(in),
		EngineVersion: h.version,
		Timestamp:     start.UTC().Format(time.RFC3339),
		DurationMS:    float64(time.Since(start).Microseconds()) / 1000,
	}
}
