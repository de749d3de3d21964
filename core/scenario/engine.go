// Package scenario produces parallel what-if snapshots.
// Each scenario perturbs one parameter of the same base inputs; scenarios
// never feed into each other.
package scenario

import (
	"fmt"
	"math"

	"saas-economics/core/cost"
	"saas-economics/core/types"
)

// CurrentPrice marks a pricing slot that uses the inputs' own price
const CurrentPrice = 0

// Config selects the scenario sets
type Config struct {
	// GrowthMultipliers scale the monthly growth rate
	GrowthMultipliers []float64 `json:"growth_multipliers"`

	// PricePoints are alternate prices; CurrentPrice means "as entered"
	PricePoints []float64 `json:"price_points"`

	// Months is the growth-scenario horizon
	Months int `json:"months"`
}

// DefaultConfig returns the half/base/double growth set and the
// 29/current/99 price set over twelve months
func DefaultConfig() Config {
	return Config{
		GrowthMultipliers: []float64{0.5, 1.0, 2.0},
		PricePoints:       []float64{29, CurrentPrice, 99},
		Months:            12,
	}
}

// Engine generates growth and pricing scenarios
type Engine struct {
	calc   *cost.Calculator
	config Config
}

// NewEngine creates a scenario engine
func NewEngine(calc *cost.Calculator, config Config) *Engine {
	return &Engine{calc: calc, config: config}
}

// CompoundCustomers applies growth and churn as sequential multiplicative
// factors: customers × (1+g) × (1−c) per month. This is a
// different model from the additive projection.
func CompoundCustomers(customers, growthPercent, churnPercent float64, months int) float64 {
	for month := 1; month <= months; month++ {
		customers = customers * (1 + growthPercent/100) * (1 - churnPercent/100)
	}
	return customers
}

// Growth runs one scenario per growth multiplier
func (e *Engine) Growth(in types.InputParameters) []types.ScenarioResult {
	results := make([]types.ScenarioResult, 0, len(e.config.GrowthMultipliers))

	for _, multiplier := range e.config.GrowthMultipliers {
		growth := in.MonthlyGrowthPercent * multiplier
		customers := CompoundCustomers(in.Customers, growth, in.MonthlyChurnPercent, e.config.Months)

		r := e.snapshot(in, customers, in.PricePerCustomer)
		r.Kind = types.ScenarioGrowth
		r.Label = growthLabel(multiplier, growth)
		r.GrowthPercent = growth
		results = append(results, r)
	}

	return results
}

// Pricing runs one scenario per price point at the current customer count
func (e *Engine) Pricing(in types.InputParameters) []types.ScenarioResult {
	results := make([]types.ScenarioResult, 0, len(e.config.PricePoints))

	for _, point := range e.config.PricePoints {
		price := point
		if point == CurrentPrice {
			price = in.PricePerCustomer
		}

		r := e.snapshot(in, in.Customers, price)
		r.Kind = types.ScenarioPricing
		r.Label = pricingLabel(point, price)
		r.GrowthPercent = in.MonthlyGrowthPercent
		breakEven := cost.BreakEvenAt(r.Cost, price)
		r.BreakEvenCustomers = &breakEven
		results = append(results, r)
	}

	return results
}

func (e *Engine) snapshot(in types.InputParameters, customers, price float64) types.ScenarioResult {
	breakdown := e.calc.Breakdown(in, customers)
	revenue := customers * price
	profit := revenue - breakdown.TotalCosts

	return types.ScenarioResult{
		Price:           price,
		EndingCustomers: customers,
		Revenue:         revenue,
		Cost:            breakdown.TotalCosts,
		Profit:          profit,
		Margin:          cost.Margin(profit, revenue),
	}
}

func growthLabel(multiplier, growth float64) string {
	switch multiplier {
	case 0.5:
		return fmt.Sprintf("Conservative (%s%% growth)", trim(growth))
	case 1:
		return fmt.Sprintf("Current (%s%% growth)", trim(growth))
	case 2:
		return fmt.Sprintf("Aggressive (%s%% growth)", trim(growth))
	}
	return fmt.Sprintf("%s× growth (%s%%)", trim(multiplier), trim(growth))
}

func pricingLabel(point, price float64) string {
	if point == CurrentPrice {
		return fmt.Sprintf("Current price ($%s/mo)", trim(price))
	}
	return fmt.Sprintf("$%s/mo", trim(price))
}

// trim formats a number without trailing zeros
func trim(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", v)
}
