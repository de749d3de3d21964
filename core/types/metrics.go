// Package types - Single-period metrics
package types

// Metrics is the single-period unit-economics snapshot for one set of inputs
type Metrics struct {
	// Inputs are the parameters the snapshot was computed from
	Inputs InputParameters `json:"inputs"`

	// Costs is the usage and provider cost breakdown
	Costs CostBreakdown `json:"costs"`

	// Revenue
	MonthlyRevenue float64 `json:"monthly_revenue"`
	ARR            float64 `json:"arr"`
	NetProfit      float64 `json:"net_profit"`
	ProfitMargin   float64 `json:"profit_margin"`
	GrossMargin    float64 `json:"gross_margin"`
	BurnRate       float64 `json:"burn_rate"`

	// Unit economics
	CostPerCustomer   float64 `json:"cost_per_customer"`
	ProfitPerCustomer float64 `json:"profit_per_customer"`
	PriceToCostRatio  float64 `json:"price_to_cost_ratio"`
	VariableCostRatio float64 `json:"variable_cost_ratio"`

	// Retention economics
	AvgLifetimeMonths      Unbounded `json:"avg_lifetime_months"`
	LTV                    Unbounded `json:"ltv"`
	NewCustomersThisPeriod float64   `json:"new_customers_this_period"`
	CAC                    Unbounded `json:"cac"`
	LTVCACRatio            Ratio     `json:"ltv_cac_ratio"`
	CACPaybackMonths       Ratio     `json:"cac_payback_months"`

	// Break-even
	BreakEvenCustomers float64   `json:"break_even_customers"`
	BreakEvenMRR       float64   `json:"break_even_mrr"`
	MonthsToBreakEven  Unbounded `json:"months_to_break_even"`
	Profitable         bool      `json:"profitable"`

	// Efficiency is the infrastructure cost-per-GB view
	Efficiency Efficiency `json:"efficiency"`
}

// Efficiency describes how effectively included quotas are used
type Efficiency struct {
	StorageCostPerGB     float64 `json:"storage_cost_per_gb"`
	BandwidthCostPerGB   float64 `json:"bandwidth_cost_per_gb"`
	StorageUtilization   float64 `json:"storage_utilization"`
	BandwidthUtilization float64 `json:"bandwidth_utilization"`
}

// StorageGB is a shortcut for the stored volume
func (m Metrics) StorageGB() float64 {
	return m.Costs.Usage.StorageGB
}

// BandwidthGB is a shortcut for the image egress volume
func (m Metrics) BandwidthGB() float64 {
	return m.Costs.Usage.ImageBandwidthGB
}

// TotalCosts is a shortcut for the total monthly cost
func (m Metrics) TotalCosts() float64 {
	return m.Costs.TotalCosts
}
