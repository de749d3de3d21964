package usage

import (
	"math"
	"testing"

	"saas-economics/core/types"
)

func TestEstimate(t *testing.T) {
	in := types.InputParameters{
		Customers:                  100,
		LocationsPerCustomer:       2,
		ImagesPerLocation:          50,
		AvgImageSizeMB:             2,
		MonthlyViewsPerImage:       10,
		HostingBandwidthMultiplier: 1.5,
	}

	u := Estimate(in)

	if u.TotalLocations != 200 {
		t.Errorf("expected 200 locations, got %v", u.TotalLocations)
	}
	if u.TotalImages != 10000 {
		t.Errorf("expected 10000 images, got %v", u.TotalImages)
	}
	if math.Abs(u.StorageGB-19.53125) > 1e-9 {
		t.Errorf("expected 19.53125 GB storage, got %v", u.StorageGB)
	}
	if math.Abs(u.ImageBandwidthGB-195.3125) > 1e-9 {
		t.Errorf("expected 195.3125 GB bandwidth, got %v", u.ImageBandwidthGB)
	}
	if math.Abs(u.HostingBandwidthGB-292.96875) > 1e-9 {
		t.Errorf("expected 292.96875 GB hosting bandwidth, got %v", u.HostingBandwidthGB)
	}
	if u.MonthlyViews != 100000 {
		t.Errorf("expected 100000 views, got %v", u.MonthlyViews)
	}
}

func TestEstimateAtScalesWithCustomers(t *testing.T) {
	in := types.InputParameters{
		Customers:            10,
		LocationsPerCustomer: 3,
		ImagesPerLocation:    40,
		AvgImageSizeMB:       1.5,
		MonthlyViewsPerImage: 20,
	}

	base := EstimateAt(in, 10)
	doubled := EstimateAt(in, 20)

	if math.Abs(doubled.StorageGB-2*base.StorageGB) > 1e-9 {
		t.Errorf("storage should scale linearly: %v vs %v", doubled.StorageGB, base.StorageGB)
	}
	if doubled.Customers != 20 {
		t.Errorf("expected customers 20, got %v", doubled.Customers)
	}

	zero := EstimateAt(in, 0)
	if zero.StorageGB != 0 || zero.ImageBandwidthGB != 0 {
		t.Errorf("zero customers should have zero usage, got %+v", zero)
	}
}
