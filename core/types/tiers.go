// Package types - Provider tier types
package types

// CostTierConfig is one "included quota + overage" price line
type CostTierConfig struct {
	// BaseFee is the flat monthly fee attached to this line (0 when the
	// provider charges its base fee elsewhere)
	BaseFee float64 `json:"base_fee"`

	// IncludedQuota is the usage covered by the base plan
	IncludedQuota float64 `json:"included_quota"`

	// OverageRatePerUnit is charged for every unit above the quota
	OverageRatePerUnit float64 `json:"overage_rate_per_unit"`

	// Unit is the billing measure (e.g. "GB")
	Unit string `json:"unit"`
}

// StorageProviderTiers prices the managed database/storage provider
type StorageProviderTiers struct {
	BaseFee float64        `json:"base_fee"`
	Storage CostTierConfig `json:"storage"`
	Egress  CostTierConfig `json:"egress"`
}

// HostingProviderTiers prices the managed hosting/CDN provider
type HostingProviderTiers struct {
	BaseFee    float64        `json:"base_fee"`
	PerSeatFee float64        `json:"per_seat_fee"`
	Bandwidth  CostTierConfig `json:"bandwidth"`
}

// TierSet is the complete, read-only pricing table used by every engine.
// It is built once at startup and passed explicitly.
type TierSet struct {
	Storage StorageProviderTiers `json:"storage_provider"`
	Hosting HostingProviderTiers `json:"hosting_provider"`
}

// DefaultTiers returns the published plan values
func DefaultTiers() TierSet {
	return TierSet{
		Storage: StorageProviderTiers{
			BaseFee: 120,
			Storage: CostTierConfig{IncludedQuota: 100, OverageRatePerUnit: 0.021, Unit: "GB"},
			Egress:  CostTierConfig{IncludedQuota: 250, OverageRatePerUnit: 0.09, Unit: "GB"},
		},
		Hosting: HostingProviderTiers{
			BaseFee:    0,
			PerSeatFee: 20,
			Bandwidth:  CostTierConfig{IncludedQuota: 1000, OverageRatePerUnit: 0.15, Unit: "GB"},
		},
	}
}
