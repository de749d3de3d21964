// Package primitives - Included-quota pricing primitives
// Every provider line is billed as "included quota + overage".
// All overage math flows through these primitives.
package primitives

import "saas-economics/core/types"

// OverageUnits returns the usage above the tier's included quota.
// Usage at or below the quota bills nothing.
func OverageUnits(usage float64, tier types.CostTierConfig) float64 {
	return max(0, usage-tier.IncludedQuota)
}

// OverageCost computes max(0, usage - quota) × rate.
// Total for every non-negative usage, including zero.
func OverageCost(usage float64, tier types.CostTierConfig) float64 {
	return OverageUnits(usage, tier) * tier.OverageRatePerUnit
}

// Line bills a single quota line
func Line(usage float64, tier types.CostTierConfig) types.LineItem {
	units := OverageUnits(usage, tier)
	return types.LineItem{
		Usage:        usage,
		OverageUnits: units,
		Cost:         units * tier.OverageRatePerUnit,
	}
}
