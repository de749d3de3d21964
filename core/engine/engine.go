// Package engine provides the API-primary unit-economics engine.
// CLI and HTTP are thin wrappers around this engine.
package engine

import (
	"go.uber.org/zap"

	"saas-economics/core/advisory"
	"saas-economics/core/cost"
	"saas-economics/core/projection"
	"saas-economics/core/scenario"
	"saas-economics/core/types"
)

// Engine runs the full computation pipeline:
// inputs → metrics → (projection, scenarios, advice).
// Every stage is a pure function of its inputs; the engine holds only
// read-only configuration and is safe to share.
type Engine struct {
	calc       *cost.Calculator
	projection *projection.Engine
	scenarios  *scenario.Engine
	advisor    *advisory.Advisor

	config EngineConfig
	logger *zap.Logger
}

// EngineConfig configures the pipeline
type EngineConfig struct {
	// Tiers is the provider pricing table
	Tiers types.TierSet

	// ProjectionMonths is the projection horizon
	ProjectionMonths int

	// Scenarios selects the what-if sets
	Scenarios scenario.Config
}

// DefaultEngineConfig returns the standard tier table, a twelve month
// horizon and the default scenario sets
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Tiers:            types.DefaultTiers(),
		ProjectionMonths: projection.DefaultMonths,
		Scenarios:        scenario.DefaultConfig(),
	}
}

// Option customizes an Engine
type Option func(*Engine)

// WithLogger attaches a logger for stage-level debug output
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine
func NewEngine(config EngineConfig, opts ...Option) *Engine {
	if config.ProjectionMonths <= 0 {
		config.ProjectionMonths = projection.DefaultMonths
	}
	if config.Scenarios.Months <= 0 {
		config.Scenarios.Months = projection.DefaultMonths
	}

	calc := cost.NewCalculator(config.Tiers)
	e := &Engine{
		calc:       calc,
		projection: projection.NewEngine(calc),
		scenarios:  scenario.NewEngine(calc, config.Scenarios),
		advisor:    advisory.NewAdvisor(config.Tiers),
		config:     config,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine configuration
func (e *Engine) Config() EngineConfig {
	return e.config
}

// Report is the complete output for one set of inputs
type Report struct {
	Metrics          types.Metrics          `json:"metrics"`
	Projection       types.ProjectionResult `json:"projection"`
	GrowthScenarios  []types.ScenarioResult `json:"growth_scenarios"`
	PricingScenarios []types.ScenarioResult `json:"pricing_scenarios"`
	Advice           types.AdviceBundle     `json:"advice"`
	Tiers            types.TierSet          `json:"tiers"`
}

// Run executes every stage. Calling Run twice with identical inputs yields
// identical reports.
func (e *Engine) Run(in types.InputParameters) *Report {
	m := e.Metrics(in)

	return &Report{
		Metrics:          m,
		Projection:       e.Project(in),
		GrowthScenarios:  e.GrowthScenarios(in),
		PricingScenarios: e.PricingScenarios(in),
		Advice:           e.Advise(m),
		Tiers:            e.config.Tiers,
	}
}

// Metrics computes the single-period snapshot
func (e *Engine) Metrics(in types.InputParameters) types.Metrics {
	m := e.calc.Compute(in)
	e.logger.Debug("computed metrics",
		zap.Float64("customers", in.Customers),
		zap.Float64("revenue", m.MonthlyRevenue),
		zap.Float64("total_costs", m.TotalCosts()),
		zap.Float64("profit_margin", m.ProfitMargin),
	)
	return m
}

// Project runs the configured projection horizon
func (e *Engine) Project(in types.InputParameters) types.ProjectionResult {
	p := e.projection.Project(in, e.config.ProjectionMonths)
	e.logger.Debug("projected customers",
		zap.Int("months", len(p.Months)),
		zap.Float64("start", p.StartCustomers),
		zap.Float64("end", p.EndCustomers),
	)
	if p.FirstNegativeMonth > 0 {
		e.logger.Warn("projection went below zero customers",
			zap.Int("month", p.FirstNegativeMonth),
			zap.Float64("min", p.MinCustomers),
			zap.Float64("end", p.EndCustomers),
			zap.Float64("churn_percent", in.MonthlyChurnPercent),
		)
	}
	return p
}

// GrowthScenarios runs the growth-multiplier family
func (e *Engine) GrowthScenarios(in types.InputParameters) []types.ScenarioResult {
	results := e.scenarios.Growth(in)
	e.logger.Debug("ran growth scenarios", zap.Int("count", len(results)))
	return results
}

// PricingScenarios runs the price-point family
func (e *Engine) PricingScenarios(in types.InputParameters) []types.ScenarioResult {
	results := e.scenarios.Pricing(in)
	e.logger.Debug("ran pricing scenarios", zap.Int("count", len(results)))
	return results
}

// Advise runs the advisory rules against a snapshot
func (e *Engine) Advise(m types.Metrics) types.AdviceBundle {
	bundle := e.advisor.Advise(m)
	e.logger.Debug("evaluated advisory rules",
		zap.Int("recommendations", len(bundle.Recommendations)),
		zap.Int("optimizations", len(bundle.Optimizations)),
		zap.Int("risks", len(bundle.Risks)),
	)
	return bundle
}
