// Package types - Scenario types
package types

// ScenarioKind distinguishes the two scenario families
type ScenarioKind string

const (
	ScenarioGrowth  ScenarioKind = "growth"
	ScenarioPricing ScenarioKind = "pricing"
)

// ScenarioResult is one what-if snapshot with a single perturbed parameter
type ScenarioResult struct {
	Kind  ScenarioKind `json:"kind"`
	Label string       `json:"label"`

	// GrowthPercent is the monthly growth the scenario ran with
	GrowthPercent float64 `json:"growth_percent"`

	// Price is the price point the scenario ran with
	Price float64 `json:"price"`

	EndingCustomers float64 `json:"ending_customers"`
	Revenue         float64 `json:"revenue"`
	Cost            float64 `json:"cost"`
	Profit          float64 `json:"profit"`
	Margin          float64 `json:"margin"`

	// BreakEvenCustomers is set for pricing scenarios only
	BreakEvenCustomers *float64 `json:"break_even_customers,omitempty"`
}

// BreakEven returns the break-even customer count, if the scenario has one
func (r ScenarioResult) BreakEven() (float64, bool) {
	if r.BreakEvenCustomers == nil {
		return 0, false
	}
	return *r.BreakEvenCustomers, true
}
