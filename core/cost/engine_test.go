package cost

import (
	"math"
	"testing"

	"saas-economics/core/types"
)

const tolerance = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Abs(b))
}

// exampleInputs is the reference photo-hosting setup
func exampleInputs() types.InputParameters {
	return types.InputParameters{
		Customers:            100,
		LocationsPerCustomer: 2,
		ImagesPerLocation:    50,
		AvgImageSizeMB:       2,
		MonthlyViewsPerImage: 10,
		PricePerCustomer:     49,
		MonthlyChurnPercent:  5,
		MonthlyGrowthPercent: 10,
		HostingSeats:         1,
	}
}

func TestComputeReferenceExample(t *testing.T) {
	m := NewCalculator(types.DefaultTiers()).Compute(exampleInputs())

	if m.Costs.Usage.TotalImages != 10000 {
		t.Errorf("expected 10000 images, got %v", m.Costs.Usage.TotalImages)
	}
	if math.Abs(m.StorageGB()-19.53) > 0.01 {
		t.Errorf("expected ~19.53 GB storage, got %v", m.StorageGB())
	}
	if math.Abs(m.BandwidthGB()-195.3) > 0.1 {
		t.Errorf("expected ~195.3 GB bandwidth, got %v", m.BandwidthGB())
	}
	if m.Costs.StorageProvider.Storage.Cost != 0 {
		t.Errorf("expected no storage overage, got %v", m.Costs.StorageProvider.Storage.Cost)
	}
	if m.Costs.StorageProvider.Egress.Cost != 0 {
		t.Errorf("expected no egress overage, got %v", m.Costs.StorageProvider.Egress.Cost)
	}
	if m.Costs.StorageProvider.Total != 120 {
		t.Errorf("expected storage provider total 120, got %v", m.Costs.StorageProvider.Total)
	}
	if m.MonthlyRevenue != 4900 {
		t.Errorf("expected revenue 4900, got %v", m.MonthlyRevenue)
	}
	if m.TotalCosts() != 120 {
		t.Errorf("expected total costs 120, got %v", m.TotalCosts())
	}
	if math.Abs(m.ProfitMargin-97.55) > 0.01 {
		t.Errorf("expected margin ~97.6%%, got %v", m.ProfitMargin)
	}
	if m.BreakEvenCustomers != 3 {
		t.Errorf("expected break-even 3 customers, got %v", m.BreakEvenCustomers)
	}
	if m.BreakEvenMRR != 120 {
		t.Errorf("expected break-even MRR 120, got %v", m.BreakEvenMRR)
	}
	if !m.Profitable {
		t.Error("expected profitable")
	}
	if m.MonthsToBreakEven != 0 {
		t.Errorf("already past break-even, expected 0 months, got %v", m.MonthsToBreakEven)
	}
	if !near(m.AvgLifetimeMonths.Float(), 20) {
		t.Errorf("expected 20 month lifetime, got %v", m.AvgLifetimeMonths)
	}
	if !near(m.LTV.Float(), 980) {
		t.Errorf("expected LTV 980, got %v", m.LTV)
	}
	// no marketing spend but growth: CAC is zero and the ratios are undefined
	if m.CAC != 0 {
		t.Errorf("expected CAC 0, got %v", m.CAC)
	}
	if m.LTVCACRatio.IsDefined() || m.CACPaybackMonths.IsDefined() {
		t.Error("expected undefined LTV:CAC and payback with zero CAC")
	}
}

func TestCostInvariants(t *testing.T) {
	calc := NewCalculator(types.DefaultTiers())

	tests := []struct {
		name string
		in   types.InputParameters
	}{
		{name: "reference", in: exampleInputs()},
		{
			name: "heavy usage with hosting",
			in: types.InputParameters{
				Customers: 800, LocationsPerCustomer: 5, ImagesPerLocation: 200, AvgImageSizeMB: 3,
				MonthlyViewsPerImage: 40, PricePerCustomer: 29, MonthlyChurnPercent: 8, MonthlyGrowthPercent: 4,
				UseSecondaryHosting: true, HostingSeats: 3, HostingBandwidthMultiplier: 1.2,
				EmployeeSalaries: 12000, MarketingSpend: 3000, OtherMonthlyCosts: 450,
			},
		},
		{name: "all zero", in: types.InputParameters{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := calc.Compute(tt.in)
			c := m.Costs

			if c.TotalCosts < c.FixedCosts {
				t.Errorf("total %v < fixed %v", c.TotalCosts, c.FixedCosts)
			}
			if !near(c.TotalCosts, c.FixedCosts+c.VariableCosts) {
				t.Errorf("total %v != fixed %v + variable %v", c.TotalCosts, c.FixedCosts, c.VariableCosts)
			}
			for name, v := range map[string]float64{
				"storage":   c.StorageProvider.Storage.Cost,
				"egress":    c.StorageProvider.Egress.Cost,
				"bandwidth": c.HostingProvider.Bandwidth.Cost,
				"hosting":   c.HostingProvider.Total,
			} {
				if v < 0 {
					t.Errorf("%s cost is negative: %v", name, v)
				}
			}
		})
	}
}

func TestHostingProvider(t *testing.T) {
	calc := NewCalculator(types.DefaultTiers())
	in := exampleInputs()
	in.Customers = 1000
	in.HostingSeats = 2
	in.HostingBandwidthMultiplier = 1

	disabled := calc.Compute(in)
	if disabled.Costs.HostingProvider.Total != 0 {
		t.Errorf("hosting disabled should cost nothing, got %v", disabled.Costs.HostingProvider.Total)
	}

	in.UseSecondaryHosting = true
	enabled := calc.Compute(in)
	h := enabled.Costs.HostingProvider

	if h.BaseFee != 40 {
		t.Errorf("expected 2 seats × 20 = 40, got %v", h.BaseFee)
	}
	// 1000 customers → 1953.125 GB bandwidth, 953.125 GB over the 1000 GB quota
	if !near(h.Bandwidth.OverageUnits, 953.125) {
		t.Errorf("expected 953.125 GB overage, got %v", h.Bandwidth.OverageUnits)
	}
	if !near(h.Bandwidth.Cost, 953.125*0.15) {
		t.Errorf("unexpected bandwidth cost %v", h.Bandwidth.Cost)
	}
	if !near(enabled.TotalCosts()-disabled.TotalCosts(), h.Total) {
		t.Errorf("hosting total should be the only difference")
	}
}

func TestZeroCustomers(t *testing.T) {
	in := exampleInputs()
	in.Customers = 0

	m := NewCalculator(types.DefaultTiers()).Compute(in)

	if m.MonthlyRevenue != 0 || m.ProfitMargin != 0 || m.GrossMargin != 0 {
		t.Errorf("expected zero revenue and margins, got %v %v %v", m.MonthlyRevenue, m.ProfitMargin, m.GrossMargin)
	}
	if m.CostPerCustomer != 0 || m.ProfitPerCustomer != 0 || m.PriceToCostRatio != 0 {
		t.Errorf("expected zero per-customer figures, got %v %v %v", m.CostPerCustomer, m.ProfitPerCustomer, m.PriceToCostRatio)
	}
	if m.BurnRate != 120 {
		t.Errorf("expected burn 120, got %v", m.BurnRate)
	}
	if !m.MonthsToBreakEven.IsInf() {
		t.Errorf("growth from zero never reaches break-even, got %v", m.MonthsToBreakEven)
	}
}

func TestCustomerAcquisitionCost(t *testing.T) {
	calc := NewCalculator(types.DefaultTiers())

	tests := []struct {
		name          string
		growth        float64
		marketing     float64
		wantCAC       float64
		wantInfinite  bool
		wantRatioSet  bool
		wantPayback   bool
		wantRatio     float64
		wantPaybackMo float64
	}{
		{name: "no spend no growth", growth: 0, marketing: 0, wantCAC: 0},
		{name: "spend but no growth", growth: 0, marketing: 500, wantInfinite: true},
		{name: "spend and growth", growth: 10, marketing: 500, wantCAC: 50, wantRatioSet: true, wantPayback: true, wantRatio: 980.0 / 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := exampleInputs()
			in.MonthlyGrowthPercent = tt.growth
			in.MarketingSpend = tt.marketing

			m := calc.Compute(in)

			if tt.wantInfinite {
				if !m.CAC.IsInf() {
					t.Fatalf("expected infinite CAC, got %v", m.CAC)
				}
			} else if !near(m.CAC.Float(), tt.wantCAC) {
				t.Fatalf("expected CAC %v, got %v", tt.wantCAC, m.CAC)
			}

			if m.LTVCACRatio.IsDefined() != tt.wantRatioSet {
				t.Errorf("LTV:CAC defined = %v, want %v", m.LTVCACRatio.IsDefined(), tt.wantRatioSet)
			}
			if m.CACPaybackMonths.IsDefined() != tt.wantPayback {
				t.Errorf("payback defined = %v, want %v", m.CACPaybackMonths.IsDefined(), tt.wantPayback)
			}
			if v, ok := m.LTVCACRatio.Value(); ok && !near(v, tt.wantRatio) {
				t.Errorf("expected LTV:CAC %v, got %v", tt.wantRatio, v)
			}
			if v, ok := m.CACPaybackMonths.Value(); ok && !near(v, m.CAC.Float()/m.ProfitPerCustomer) {
				t.Errorf("unexpected payback %v", v)
			}
		})
	}
}

func TestZeroChurnHasInfiniteLifetime(t *testing.T) {
	in := exampleInputs()
	in.MonthlyChurnPercent = 0
	in.MarketingSpend = 100

	m := NewCalculator(types.DefaultTiers()).Compute(in)

	if !m.AvgLifetimeMonths.IsInf() || !m.LTV.IsInf() {
		t.Errorf("expected infinite lifetime and LTV, got %v %v", m.AvgLifetimeMonths, m.LTV)
	}
	v, ok := m.LTVCACRatio.Value()
	if !ok || !math.IsInf(v, 1) {
		t.Errorf("expected defined infinite LTV:CAC, got %v %v", v, ok)
	}

	in.PricePerCustomer = 0
	free := NewCalculator(types.DefaultTiers()).Compute(in)
	if free.LTV != 0 {
		t.Errorf("free product should have zero LTV, got %v", free.LTV)
	}
}

func TestMonthsToBreakEven(t *testing.T) {
	in := exampleInputs()
	in.Customers = 10
	in.EmployeeSalaries = 1000

	m := NewCalculator(types.DefaultTiers()).Compute(in)

	// ceil(1120/49) = 23
	if m.BreakEvenCustomers != 23 {
		t.Fatalf("expected 23 break-even customers, got %v", m.BreakEvenCustomers)
	}
	if m.Profitable {
		t.Error("10 customers should be below break-even")
	}
	want := math.Log(23.0/10) / math.Log(1.1)
	if !near(m.MonthsToBreakEven.Float(), want) {
		t.Errorf("expected %v months, got %v", want, m.MonthsToBreakEven)
	}

	in.MonthlyGrowthPercent = 0
	flat := NewCalculator(types.DefaultTiers()).Compute(in)
	if flat.MonthsToBreakEven != 0 {
		t.Errorf("no growth should give 0 months, got %v", flat.MonthsToBreakEven)
	}
}

func TestEfficiency(t *testing.T) {
	calc := NewCalculator(types.DefaultTiers())

	small := calc.Compute(exampleInputs())
	if !near(small.Efficiency.StorageCostPerGB, 1.2) {
		t.Errorf("under quota storage cost/GB should be base/quota = 1.2, got %v", small.Efficiency.StorageCostPerGB)
	}
	if !near(small.Efficiency.StorageUtilization, 19.53125) {
		t.Errorf("unexpected storage utilization %v", small.Efficiency.StorageUtilization)
	}

	in := exampleInputs()
	in.Customers = 2000
	big := calc.Compute(in)
	if big.Efficiency.StorageUtilization != 100 || big.Efficiency.BandwidthUtilization != 100 {
		t.Errorf("utilization should cap at 100, got %v %v", big.Efficiency.StorageUtilization, big.Efficiency.BandwidthUtilization)
	}
	if big.Efficiency.BandwidthCostPerGB <= 0 {
		t.Errorf("expected positive bandwidth cost/GB, got %v", big.Efficiency.BandwidthCostPerGB)
	}
}

func TestAlternateTiers(t *testing.T) {
	tiers := types.DefaultTiers()
	tiers.Storage.BaseFee = 25
	tiers.Storage.Storage.IncludedQuota = 8

	m := NewCalculator(tiers).Compute(exampleInputs())

	wantStorage := (19.53125 - 8) * 0.021
	if !near(m.Costs.StorageProvider.Storage.Cost, wantStorage) {
		t.Errorf("expected storage overage %v, got %v", wantStorage, m.Costs.StorageProvider.Storage.Cost)
	}
	if !near(m.TotalCosts(), 25+wantStorage) {
		t.Errorf("unexpected total %v", m.TotalCosts())
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	calc := NewCalculator(types.DefaultTiers())
	in := exampleInputs()
	in.MarketingSpend = 700

	a := calc.Compute(in)
	b := calc.Compute(in)

	if a.NetProfit != b.NetProfit || a.CAC != b.CAC || a.LTVCACRatio != b.LTVCACRatio {
		t.Error("repeated computation produced different results")
	}
}
