// Package types - Business input types
package types

// InputParameters holds the business inputs for one computation request.
// All numeric fields are expected to be non-negative; clamping happens
// before a value is built (see core/input).
type InputParameters struct {
	// Customers is the current paying customer count
	Customers float64 `json:"customers" yaml:"customers"`

	// LocationsPerCustomer is the number of locations each customer manages
	LocationsPerCustomer float64 `json:"locations_per_customer" yaml:"locations_per_customer"`

	// ImagesPerLocation is the number of stored images per location
	ImagesPerLocation float64 `json:"images_per_location" yaml:"images_per_location"`

	// AvgImageSizeMB is the average stored image size in MB
	AvgImageSizeMB float64 `json:"avg_image_size_mb" yaml:"avg_image_size_mb"`

	// MonthlyViewsPerImage is the number of times an image is served per month
	MonthlyViewsPerImage float64 `json:"monthly_views_per_image" yaml:"monthly_views_per_image"`

	// PricePerCustomer is the monthly subscription price
	PricePerCustomer float64 `json:"price_per_customer" yaml:"price_per_customer"`

	// SetupFee is the one-off onboarding fee. It does not enter any formula.
	SetupFee float64 `json:"setup_fee" yaml:"setup_fee"`

	// MonthlyChurnPercent is the share of customers lost per month (5 = 5%)
	MonthlyChurnPercent float64 `json:"monthly_churn_percent" yaml:"monthly_churn_percent"`

	// MonthlyGrowthPercent is the share of customers gained per month (10 = 10%)
	MonthlyGrowthPercent float64 `json:"monthly_growth_percent" yaml:"monthly_growth_percent"`

	// UseSecondaryHosting enables the hosting/CDN provider costs
	UseSecondaryHosting bool `json:"use_secondary_hosting" yaml:"use_secondary_hosting"`

	// HostingSeats is the number of paid seats on the hosting provider
	HostingSeats float64 `json:"hosting_seats" yaml:"hosting_seats"`

	// HostingBandwidthMultiplier scales image bandwidth into hosting bandwidth
	HostingBandwidthMultiplier float64 `json:"hosting_bandwidth_multiplier" yaml:"hosting_bandwidth_multiplier"`

	// EmployeeSalaries is the monthly payroll
	EmployeeSalaries float64 `json:"employee_salaries" yaml:"employee_salaries"`

	// MarketingSpend is the monthly acquisition budget
	MarketingSpend float64 `json:"marketing_spend" yaml:"marketing_spend"`

	// OtherMonthlyCosts covers everything else
	OtherMonthlyCosts float64 `json:"other_monthly_costs" yaml:"other_monthly_costs"`
}

// WithCustomers returns a copy of the inputs with a different customer count
func (p InputParameters) WithCustomers(customers float64) InputParameters {
	p.Customers = customers
	return p
}

// WithPrice returns a copy of the inputs with a different price
func (p InputParameters) WithPrice(price float64) InputParameters {
	p.PricePerCustomer = price
	return p
}

// WithGrowth returns a copy of the inputs with a different growth rate
func (p InputParameters) WithGrowth(growthPercent float64) InputParameters {
	p.MonthlyGrowthPercent = growthPercent
	return p
}

// OtherCosts returns salaries + marketing + other monthly costs
func (p InputParameters) OtherCosts() float64 {
	return p.EmployeeSalaries + p.MarketingSpend + p.OtherMonthlyCosts
}
