// Package projection simulates customer growth and churn month by month.
// Growth and churn both act on the pre-update count and are applied
// additively. Costs are fully re-derived at each month's new count.
package projection

import (
	"saas-economics/core/cost"
	"saas-economics/core/types"
)

// DefaultMonths is the standard projection horizon
const DefaultMonths = 12

// Engine runs additive growth/churn projections
type Engine struct {
	calc *cost.Calculator
}

// NewEngine creates a projection engine that prices months with calc
func NewEngine(calc *cost.Calculator) *Engine {
	return &Engine{calc: calc}
}

// Project runs exactly months iterations. There is no early exit and the
// customer count is not clamped: churn above growth keeps shrinking it and
// can take it below zero.
func (e *Engine) Project(in types.InputParameters, months int) types.ProjectionResult {
	if months < 0 {
		months = 0
	}

	result := types.ProjectionResult{
		Months:         make([]types.MonthSnapshot, 0, months),
		StartCustomers: in.Customers,
		MinCustomers:   in.Customers,
	}

	customers := in.Customers
	for month := 1; month <= months; month++ {
		newCustomers := customers * (in.MonthlyGrowthPercent / 100)
		churned := customers * (in.MonthlyChurnPercent / 100)
		customers = customers + newCustomers - churned
		if customers < result.MinCustomers {
			result.MinCustomers = customers
		}
		if customers < 0 && result.FirstNegativeMonth == 0 {
			result.FirstNegativeMonth = month
		}

		result.CumulativeNewCustomers += newCustomers
		result.CumulativeChurnedCustomers += churned

		breakdown := e.calc.Breakdown(in, customers)
		revenue := customers * in.PricePerCustomer

		result.CumulativeRevenue += revenue
		result.CumulativeCost += breakdown.TotalCosts

		result.Months = append(result.Months, types.MonthSnapshot{
			Month:            month,
			Customers:        customers,
			NewCustomers:     newCustomers,
			ChurnedCustomers: churned,
			StorageGB:        breakdown.Usage.StorageGB,
			BandwidthGB:      breakdown.Usage.ImageBandwidthGB,
			Revenue:          revenue,
			Cost:             breakdown.TotalCosts,
			Profit:           revenue - breakdown.TotalCosts,
		})
	}

	result.EndCustomers = customers
	result.CumulativeProfit = result.CumulativeRevenue - result.CumulativeCost
	return result
}
