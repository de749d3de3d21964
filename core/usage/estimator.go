// Package usage derives storage and traffic volumes from business inputs.
// Usage is decoupled from pricing so projections and scenarios can
// re-derive it at any customer count.
package usage

import "saas-economics/core/types"

// MBPerGB converts image sizes in MB into billed GB
const MBPerGB = 1024

// Estimate derives usage at the inputs' own customer count
func Estimate(in types.InputParameters) types.Usage {
	return EstimateAt(in, in.Customers)
}

// EstimateAt derives usage for an arbitrary customer count using the
// per-customer shape of the inputs.
func EstimateAt(in types.InputParameters, customers float64) types.Usage {
	totalLocations := customers * in.LocationsPerCustomer
	totalImages := totalLocations * in.ImagesPerLocation
	imageBandwidthGB := totalImages * in.MonthlyViewsPerImage * in.AvgImageSizeMB / MBPerGB

	return types.Usage{
		Customers:          customers,
		TotalLocations:     totalLocations,
		TotalImages:        totalImages,
		StorageGB:          totalImages * in.AvgImageSizeMB / MBPerGB,
		ImageBandwidthGB:   imageBandwidthGB,
		HostingBandwidthGB: imageBandwidthGB * in.HostingBandwidthMultiplier,
		MonthlyViews:       totalImages * in.MonthlyViewsPerImage,
	}
}
