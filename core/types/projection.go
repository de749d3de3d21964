// Package types - Projection types
package types

// MonthSnapshot is one simulated month
type MonthSnapshot struct {
	Month            int     `json:"month"`
	Customers        float64 `json:"customers"`
	NewCustomers     float64 `json:"new_customers"`
	ChurnedCustomers float64 `json:"churned_customers"`
	StorageGB        float64 `json:"storage_gb"`
	BandwidthGB      float64 `json:"bandwidth_gb"`
	Revenue          float64 `json:"revenue"`
	Cost             float64 `json:"cost"`
	Profit           float64 `json:"profit"`
}

// ProjectionResult is a month-by-month growth/churn simulation
type ProjectionResult struct {
	Months []MonthSnapshot `json:"months"`

	StartCustomers             float64 `json:"start_customers"`
	EndCustomers               float64 `json:"end_customers"`
	MinCustomers               float64 `json:"min_customers"`
	FirstNegativeMonth         int     `json:"first_negative_month,omitempty"`
	CumulativeNewCustomers     float64 `json:"cumulative_new_customers"`
	CumulativeChurnedCustomers float64 `json:"cumulative_churned_customers"`
	CumulativeRevenue          float64 `json:"cumulative_revenue"`
	CumulativeCost             float64 `json:"cumulative_cost"`
	CumulativeProfit           float64 `json:"cumulative_profit"`
}
