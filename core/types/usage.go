// Package types - Usage types
package types

// Usage is the storage and traffic footprint for a customer count
type Usage struct {
	// Customers is the count the usage was derived for
	Customers float64 `json:"customers"`

	// TotalLocations is customers × locations per customer
	TotalLocations float64 `json:"total_locations"`

	// TotalImages is locations × images per location
	TotalImages float64 `json:"total_images"`

	// StorageGB is the stored image volume
	StorageGB float64 `json:"storage_gb"`

	// ImageBandwidthGB is the monthly image egress served by the storage provider
	ImageBandwidthGB float64 `json:"image_bandwidth_gb"`

	// HostingBandwidthGB is the monthly bandwidth billed by the hosting provider
	HostingBandwidthGB float64 `json:"hosting_bandwidth_gb"`

	// MonthlyViews is the number of image views per month
	MonthlyViews float64 `json:"monthly_views"`
}
