// Package input - Input collection for the unit-economics engine
// Raw inputs arrive from files, flags or query strings with any field
// missing. Normalize turns them into the clean InputParameters the core
// expects: missing or invalid numbers become 0 (hosting seats become 1)
// and negatives are clamped to 0.
package input

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"

	"saas-economics/core/types"
)

// RawInputs holds possibly-missing business inputs. A nil field means the
// source did not provide the value.
type RawInputs struct {
	Customers                  *float64 `json:"customers,omitempty" yaml:"customers,omitempty" hcl:"customers,optional"`
	LocationsPerCustomer       *float64 `json:"locations_per_customer,omitempty" yaml:"locations_per_customer,omitempty" hcl:"locations_per_customer,optional"`
	ImagesPerLocation          *float64 `json:"images_per_location,omitempty" yaml:"images_per_location,omitempty" hcl:"images_per_location,optional"`
	AvgImageSizeMB             *float64 `json:"avg_image_size_mb,omitempty" yaml:"avg_image_size_mb,omitempty" hcl:"avg_image_size_mb,optional"`
	MonthlyViewsPerImage       *float64 `json:"monthly_views_per_image,omitempty" yaml:"monthly_views_per_image,omitempty" hcl:"monthly_views_per_image,optional"`
	PricePerCustomer           *float64 `json:"price_per_customer,omitempty" yaml:"price_per_customer,omitempty" hcl:"price_per_customer,optional"`
	SetupFee                   *float64 `json:"setup_fee,omitempty" yaml:"setup_fee,omitempty" hcl:"setup_fee,optional"`
	MonthlyChurnPercent        *float64 `json:"monthly_churn_percent,omitempty" yaml:"monthly_churn_percent,omitempty" hcl:"monthly_churn_percent,optional"`
	MonthlyGrowthPercent       *float64 `json:"monthly_growth_percent,omitempty" yaml:"monthly_growth_percent,omitempty" hcl:"monthly_growth_percent,optional"`
	UseSecondaryHosting        *bool    `json:"use_secondary_hosting,omitempty" yaml:"use_secondary_hosting,omitempty" hcl:"use_secondary_hosting,optional"`
	HostingSeats               *float64 `json:"hosting_seats,omitempty" yaml:"hosting_seats,omitempty" hcl:"hosting_seats,optional"`
	HostingBandwidthMultiplier *float64 `json:"hosting_bandwidth_multiplier,omitempty" yaml:"hosting_bandwidth_multiplier,omitempty" hcl:"hosting_bandwidth_multiplier,optional"`
	EmployeeSalaries           *float64 `json:"employee_salaries,omitempty" yaml:"employee_salaries,omitempty" hcl:"employee_salaries,optional"`
	MarketingSpend             *float64 `json:"marketing_spend,omitempty" yaml:"marketing_spend,omitempty" hcl:"marketing_spend,optional"`
	OtherMonthlyCosts          *float64 `json:"other_monthly_costs,omitempty" yaml:"other_monthly_costs,omitempty" hcl:"other_monthly_costs,optional"`
}

// Float returns a pointer to v, for building RawInputs literals
func Float(v float64) *float64 {
	return &v
}

// Bool returns a pointer to v
func Bool(v bool) *bool {
	return &v
}

// Defaults returns the seed example: a small studio with 100 customers
// on a $49 plan and no secondary hosting.
func Defaults() RawInputs {
	return RawInputs{
		Customers:                  Float(100),
		LocationsPerCustomer:       Float(2),
		ImagesPerLocation:          Float(50),
		AvgImageSizeMB:             Float(2),
		MonthlyViewsPerImage:       Float(10),
		PricePerCustomer:           Float(49),
		SetupFee:                   Float(0),
		MonthlyChurnPercent:        Float(5),
		MonthlyGrowthPercent:       Float(10),
		UseSecondaryHosting:        Bool(false),
		HostingSeats:               Float(1),
		HostingBandwidthMultiplier: Float(1),
		EmployeeSalaries:           Float(0),
		MarketingSpend:             Float(0),
		OtherMonthlyCosts:          Float(0),
	}
}

// Merge returns base with every non-nil field of overlay applied on top
func Merge(base, overlay RawInputs) RawInputs {
	out := base
	pick := func(dst **float64, src *float64) {
		if src != nil {
			*dst = src
		}
	}

	pick(&out.Customers, overlay.Customers)
	pick(&out.LocationsPerCustomer, overlay.LocationsPerCustomer)
	pick(&out.ImagesPerLocation, overlay.ImagesPerLocation)
	pick(&out.AvgImageSizeMB, overlay.AvgImageSizeMB)
	pick(&out.MonthlyViewsPerImage, overlay.MonthlyViewsPerImage)
	pick(&out.PricePerCustomer, overlay.PricePerCustomer)
	pick(&out.SetupFee, overlay.SetupFee)
	pick(&out.MonthlyChurnPercent, overlay.MonthlyChurnPercent)
	pick(&out.MonthlyGrowthPercent, overlay.MonthlyGrowthPercent)
	pick(&out.HostingSeats, overlay.HostingSeats)
	pick(&out.HostingBandwidthMultiplier, overlay.HostingBandwidthMultiplier)
	pick(&out.EmployeeSalaries, overlay.EmployeeSalaries)
	pick(&out.MarketingSpend, overlay.MarketingSpend)
	pick(&out.OtherMonthlyCosts, overlay.OtherMonthlyCosts)
	if overlay.UseSecondaryHosting != nil {
		out.UseSecondaryHosting = overlay.UseSecondaryHosting
	}

	return out
}

// Normalize resolves missing and invalid values and clamps negatives
func Normalize(raw RawInputs) types.InputParameters {
	seats := number(raw.HostingSeats)
	if seats == 0 {
		seats = 1
	}

	hosting := false
	if raw.UseSecondaryHosting != nil {
		hosting = *raw.UseSecondaryHosting
	}

	return types.InputParameters{
		Customers:                  number(raw.Customers),
		LocationsPerCustomer:       number(raw.LocationsPerCustomer),
		ImagesPerLocation:          number(raw.ImagesPerLocation),
		AvgImageSizeMB:             number(raw.AvgImageSizeMB),
		MonthlyViewsPerImage:       number(raw.MonthlyViewsPerImage),
		PricePerCustomer:           number(raw.PricePerCustomer),
		SetupFee:                   number(raw.SetupFee),
		MonthlyChurnPercent:        number(raw.MonthlyChurnPercent),
		MonthlyGrowthPercent:       number(raw.MonthlyGrowthPercent),
		UseSecondaryHosting:        hosting,
		HostingSeats:               seats,
		HostingBandwidthMultiplier: number(raw.HostingBandwidthMultiplier),
		EmployeeSalaries:           number(raw.EmployeeSalaries),
		MarketingSpend:             number(raw.MarketingSpend),
		OtherMonthlyCosts:          number(raw.OtherMonthlyCosts),
	}
}

// number maps nil, NaN, ±Inf and negatives to 0
func number(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return 0
	}
	return *v
}

// Hash computes a stable content hash of normalized inputs
func Hash(in types.InputParameters) string {
	// InputParameters holds only finite floats and a bool after Normalize
	data, _ := json.Marshal(in)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
