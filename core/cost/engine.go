// Package cost provides the unit-economics engine.
// This package turns business inputs into provider bills and a
// single-period metrics snapshot. Every division is guarded by an explicit
// branch; nothing here returns an error.
package cost

import (
	"math"

	"saas-economics/core/pricing/primitives"
	"saas-economics/core/types"
	"saas-economics/core/usage"
)

// Calculator prices usage against a fixed tier table
type Calculator struct {
	tiers types.TierSet
}

// NewCalculator creates a calculator bound to a tier table
func NewCalculator(tiers types.TierSet) *Calculator {
	return &Calculator{tiers: tiers}
}

// Tiers returns the tier table the calculator prices against
func (c *Calculator) Tiers() types.TierSet {
	return c.tiers
}

// Breakdown re-derives usage and the full monthly cost at the given
// customer count. Projections and scenarios call this at counts other than
// inputs.Customers.
func (c *Calculator) Breakdown(in types.InputParameters, customers float64) types.CostBreakdown {
	u := usage.EstimateAt(in, customers)

	storage := c.storageProvider(u)
	hosting := c.hostingProvider(in, u)

	other := in.OtherCosts()
	infra := storage.Total + hosting.Total

	return types.CostBreakdown{
		Usage:               u,
		StorageProvider:     storage,
		HostingProvider:     hosting,
		OtherCosts:          other,
		InfrastructureCosts: infra,
		TotalCosts:          storage.Total + hosting.Total + other,
		FixedCosts:          storage.BaseFee + hosting.BaseFee + in.EmployeeSalaries + in.OtherMonthlyCosts,
		VariableCosts:       storage.Storage.Cost + storage.Egress.Cost + hosting.Bandwidth.Cost + in.MarketingSpend,
	}
}

func (c *Calculator) storageProvider(u types.Usage) types.StorageProviderCost {
	storage := primitives.Line(u.StorageGB, c.tiers.Storage.Storage)
	egress := primitives.Line(u.ImageBandwidthGB, c.tiers.Storage.Egress)

	return types.StorageProviderCost{
		BaseFee: c.tiers.Storage.BaseFee,
		Storage: storage,
		Egress:  egress,
		Total:   c.tiers.Storage.BaseFee + storage.Cost + egress.Cost,
	}
}

// hostingProvider bills nothing unless secondary hosting is enabled
func (c *Calculator) hostingProvider(in types.InputParameters, u types.Usage) types.HostingProviderCost {
	if !in.UseSecondaryHosting {
		return types.HostingProviderCost{}
	}

	base := c.tiers.Hosting.BaseFee + in.HostingSeats*c.tiers.Hosting.PerSeatFee
	bandwidth := primitives.Line(u.HostingBandwidthGB, c.tiers.Hosting.Bandwidth)

	return types.HostingProviderCost{
		Enabled:   true,
		Seats:     in.HostingSeats,
		BaseFee:   base,
		Bandwidth: bandwidth,
		Total:     base + bandwidth.Cost,
	}
}

// Compute derives the single-period metrics snapshot
func (c *Calculator) Compute(in types.InputParameters) types.Metrics {
	costs := c.Breakdown(in, in.Customers)
	total := costs.TotalCosts

	m := types.Metrics{
		Inputs: in,
		Costs:  costs,
	}

	// Revenue
	m.MonthlyRevenue = in.Customers * in.PricePerCustomer
	m.ARR = m.MonthlyRevenue * 12
	m.NetProfit = m.MonthlyRevenue - total
	m.ProfitMargin = Margin(m.NetProfit, m.MonthlyRevenue)
	m.GrossMargin = Margin(m.MonthlyRevenue-costs.InfrastructureCosts, m.MonthlyRevenue)
	if m.NetProfit < 0 {
		m.BurnRate = -m.NetProfit
	}

	// Unit economics
	if in.Customers > 0 {
		m.CostPerCustomer = total / in.Customers
		m.ProfitPerCustomer = m.NetProfit / in.Customers
	}
	if m.CostPerCustomer > 0 {
		m.PriceToCostRatio = in.PricePerCustomer / m.CostPerCustomer
	}
	if total > 0 {
		m.VariableCostRatio = costs.VariableCosts / total * 100
	}

	c.retention(in, &m)
	c.breakEven(in, &m)
	m.Efficiency = c.efficiency(costs)

	return m
}

// retention fills lifetime, LTV and CAC figures.
// CAC is 0 with no spend and no growth, but +Inf with spend and no growth.
func (c *Calculator) retention(in types.InputParameters, m *types.Metrics) {
	m.AvgLifetimeMonths = types.Infinite()
	if in.MonthlyChurnPercent > 0 {
		m.AvgLifetimeMonths = types.Unbounded(1 / (in.MonthlyChurnPercent / 100))
	}

	// 0 × Inf would be NaN; a free product has no lifetime value
	if in.PricePerCustomer > 0 {
		m.LTV = types.Unbounded(in.PricePerCustomer * m.AvgLifetimeMonths.Float())
	}

	m.NewCustomersThisPeriod = in.Customers * (in.MonthlyGrowthPercent / 100)
	switch {
	case m.NewCustomersThisPeriod > 0:
		m.CAC = types.Unbounded(in.MarketingSpend / m.NewCustomersThisPeriod)
	case in.MarketingSpend > 0:
		m.CAC = types.Infinite()
	default:
		m.CAC = 0
	}

	m.LTVCACRatio = types.Undefined()
	m.CACPaybackMonths = types.Undefined()

	cac := m.CAC.Float()
	if cac > 0 && !m.CAC.IsInf() {
		m.LTVCACRatio = types.Defined(m.LTV.Float() / cac)
		if m.ProfitPerCustomer > 0 {
			m.CACPaybackMonths = types.Defined(cac / m.ProfitPerCustomer)
		}
	}
}

// breakEven uses the continuous-compounding inverse of the growth curve.
// It ignores churn.
func (c *Calculator) breakEven(in types.InputParameters, m *types.Metrics) {
	total := m.Costs.TotalCosts

	m.BreakEvenCustomers = BreakEvenAt(total, in.PricePerCustomer)
	m.BreakEvenMRR = total
	m.Profitable = in.Customers >= m.BreakEvenCustomers

	if in.MonthlyGrowthPercent > 0 && in.Customers < m.BreakEvenCustomers {
		m.MonthsToBreakEven = types.Unbounded(
			math.Log(m.BreakEvenCustomers/in.Customers) / math.Log(1+in.MonthlyGrowthPercent/100),
		)
	}
}

func (c *Calculator) efficiency(costs types.CostBreakdown) types.Efficiency {
	storageGB := costs.Usage.StorageGB
	bandwidthGB := costs.Usage.ImageBandwidthGB
	storageTier := c.tiers.Storage.Storage
	egressTier := c.tiers.Storage.Egress
	base := c.tiers.Storage.BaseFee

	var e types.Efficiency

	if storageGB > storageTier.IncludedQuota {
		// base fee is shared between storage and egress by volume
		e.StorageCostPerGB = (base*(storageGB/(storageGB+bandwidthGB)) + costs.StorageProvider.Storage.Cost) / storageGB
	} else if storageTier.IncludedQuota > 0 {
		e.StorageCostPerGB = base / storageTier.IncludedQuota
	}

	if bandwidthGB > 0 {
		e.BandwidthCostPerGB = (costs.StorageProvider.Egress.Cost + costs.HostingProvider.Bandwidth.Cost) /
			(bandwidthGB + costs.Usage.HostingBandwidthGB)
	}

	if storageTier.IncludedQuota > 0 {
		e.StorageUtilization = math.Min(storageGB/storageTier.IncludedQuota*100, 100)
	}
	if egressTier.IncludedQuota > 0 {
		e.BandwidthUtilization = math.Min(bandwidthGB/egressTier.IncludedQuota*100, 100)
	}

	return e
}

// Margin returns profit/revenue as a percentage, or 0 when there is no revenue
func Margin(profit, revenue float64) float64 {
	if revenue > 0 {
		return profit / revenue * 100
	}
	return 0
}

// BreakEvenAt returns ceil(cost/price), or 0 for a zero price
func BreakEvenAt(totalCosts, price float64) float64 {
	if price > 0 {
		return math.Ceil(totalCosts / price)
	}
	return 0
}
