// Package types - Cost breakdown types
package types

// LineItem is a single billed quota line
type LineItem struct {
	// Usage is the measured usage for the line
	Usage float64 `json:"usage"`

	// OverageUnits is the usage above the included quota
	OverageUnits float64 `json:"overage_units"`

	// Cost is OverageUnits × rate
	Cost float64 `json:"cost"`
}

// StorageProviderCost is the storage/DB provider bill
type StorageProviderCost struct {
	BaseFee float64  `json:"base_fee"`
	Storage LineItem `json:"storage"`
	Egress  LineItem `json:"egress"`
	Total   float64  `json:"total"`
}

// HostingProviderCost is the hosting/CDN provider bill. All fields are
// zero when secondary hosting is disabled.
type HostingProviderCost struct {
	Enabled   bool     `json:"enabled"`
	Seats     float64  `json:"seats"`
	BaseFee   float64  `json:"base_fee"`
	Bandwidth LineItem `json:"bandwidth"`
	Total     float64  `json:"total"`
}

// CostBreakdown is the full monthly cost for one customer count
type CostBreakdown struct {
	Usage Usage `json:"usage"`

	StorageProvider StorageProviderCost `json:"storage_provider"`
	HostingProvider HostingProviderCost `json:"hosting_provider"`

	// OtherCosts is salaries + marketing + other monthly costs
	OtherCosts float64 `json:"other_costs"`

	// InfrastructureCosts is the sum of both provider bills
	InfrastructureCosts float64 `json:"infrastructure_costs"`

	// TotalCosts is infrastructure + other costs
	TotalCosts float64 `json:"total_costs"`

	// FixedCosts do not scale with usage
	FixedCosts float64 `json:"fixed_costs"`

	// VariableCosts are overages plus marketing
	VariableCosts float64 `json:"variable_costs"`
}
