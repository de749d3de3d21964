// Package advisory classifies business health and produces recommendations.
// Every rule is an independent threshold check against one Metrics
// snapshot; several may fire at once.
package advisory

import (
	"math"

	"saas-economics/core/types"
)

// Absolute thresholds. Quota-relative checks read the tier table instead.
const (
	HealthyMargin        = 20.0
	StrongGrossMargin    = 70.0
	GoodGrossMargin      = 50.0
	ExcellentChurn       = 3.0
	GoodChurn            = 7.0
	StrongUnitEconomics  = 1.5
	ExtremeChurn         = 10.0
	ElevatedChurn        = 5.0
	PoorGrossMargin      = 40.0
	ThinMargin           = 15.0
	ExcellentMargin      = 50.0
	CompressionStorageGB = 50.0
	CDNBandwidthGB       = 100.0
	PriceBumpCeiling     = 50.0
	PriceBump            = 10.0
	CompressionSavings   = 0.3
	CDNSavings           = 0.4
	ScalingQuotaShare    = 0.8
)

// Advisor evaluates the rule tables
type Advisor struct {
	tiers types.TierSet
}

// NewAdvisor creates an advisor. Quota checks use the given tiers.
func NewAdvisor(tiers types.TierSet) *Advisor {
	return &Advisor{tiers: tiers}
}

// Advise runs every rule table against the snapshot
func (a *Advisor) Advise(m types.Metrics) types.AdviceBundle {
	return types.AdviceBundle{
		Health:          Health(m),
		Recommendations: a.Recommendations(m),
		Optimizations:   Optimizations(m),
		Risks:           a.Risks(m),
		MarginIndicator: MarginIndicator(m),
		ScalingAlert:    a.ScalingAlert(m),
	}
}

// Health returns the four traffic-light cards. Tiers within a card are
// mutually exclusive.
func Health(m types.Metrics) []types.HealthCard {
	margin := m.ProfitMargin
	gross := m.GrossMargin
	churn := m.Inputs.MonthlyChurnPercent

	cards := []types.HealthCard{
		tiered("Profitability", margin >= HealthyMargin, margin >= 0, "Healthy", "Fair", "Poor"),
		tiered("Gross Margin", gross >= StrongGrossMargin, gross >= GoodGrossMargin, "Excellent", "Good", "Needs Improvement"),
		tiered("Churn Rate", churn <= ExcellentChurn, churn <= GoodChurn, "Excellent", "Good", "High"),
	}

	// zero customers have no unit economics to speak of
	customers := m.Inputs.Customers
	price := m.Inputs.PricePerCustomer
	strong := customers > 0 && price > m.CostPerCustomer*StrongUnitEconomics
	fair := customers > 0 && price > m.CostPerCustomer
	cards = append(cards, tiered("Unit Economics", strong, fair, "Strong", "Fair", "Weak"))

	return cards
}

func tiered(label string, good, fair bool, goodStatus, fairStatus, poorStatus string) types.HealthCard {
	switch {
	case good:
		return types.HealthCard{Label: label, Status: goodStatus, Tone: types.ToneGood}
	case fair:
		return types.HealthCard{Label: label, Status: fairStatus, Tone: types.ToneFair}
	default:
		return types.HealthCard{Label: label, Status: poorStatus, Tone: types.TonePoor}
	}
}

// Recommendations returns the fired recommendation rules, or the
// "business is healthy" fallback when none fired.
func (a *Advisor) Recommendations(m types.Metrics) []types.Advisory {
	var recs []types.Advisory

	if rec, ok := profitability(m); ok {
		recs = append(recs, rec)
	}

	if m.GrossMargin < StrongGrossMargin {
		recs = append(recs, types.Advisory{
			Code:     CodeInfraCostHigh,
			Category: CategoryInfrastructure,
			Severity: types.SeverityWarning,
			Title:    "Infrastructure Costs High",
			Figures:  map[string]float64{FigureGrossMargin: m.GrossMargin},
			Suggestions: []string{
				"Implementing image compression and lazy loading",
				"Using CDN caching more effectively",
				"Optimizing storage with archival tiers for old images",
			},
		})
	}

	if churn := m.Inputs.MonthlyChurnPercent; churn > GoodChurn {
		recs = append(recs, types.Advisory{
			Code:     CodeHighChurn,
			Category: CategoryRetention,
			Severity: types.SeverityDanger,
			Title:    "High Churn Rate",
			Figures:  map[string]float64{FigureChurn: churn},
			Suggestions: []string{
				"Customer success and onboarding improvements",
				"Product features that increase stickiness",
				"Understanding why customers are leaving",
			},
		})
	}

	storageQuota := a.tiers.Storage.Storage.IncludedQuota
	if m.StorageGB() > storageQuota {
		recs = append(recs, types.Advisory{
			Code:     CodeStorageOverage,
			Category: CategoryStorage,
			Severity: types.SeverityInfo,
			Title:    "Storage Optimization Opportunity",
			Figures: map[string]float64{
				FigureOverageGB:   m.StorageGB() - storageQuota,
				FigureOverageCost: m.Costs.StorageProvider.Storage.Cost,
			},
			Suggestions: []string{
				"Implementing image compression (WebP format, ~30% smaller)",
				"Offering multiple image size options",
				"Archiving rarely-accessed images",
			},
		})
	}

	egressQuota := a.tiers.Storage.Egress.IncludedQuota
	if m.BandwidthGB() > egressQuota {
		recs = append(recs, types.Advisory{
			Code:     CodeBandwidthOverage,
			Category: CategoryBandwidth,
			Severity: types.SeverityInfo,
			Title:    "Bandwidth Optimization Opportunity",
			Figures: map[string]float64{
				FigureOverageGB:   m.BandwidthGB() - egressQuota,
				FigureOverageCost: m.Costs.StorageProvider.Egress.Cost,
			},
			Suggestions: []string{
				"Implementing aggressive CDN caching",
				"Using responsive images (serve smaller sizes on mobile)",
				"Lazy loading images below the fold",
			},
		})
	}

	if len(recs) == 0 {
		recs = append(recs, types.Advisory{
			Code:     CodeHealthy,
			Category: CategoryOverall,
			Severity: types.SeverityInfo,
			Title:    "Business is Healthy!",
			Suggestions: []string{
				"Sustainable growth and customer acquisition",
				"Continuously improving product value",
				"Monitoring unit economics as you scale",
			},
		})
	}

	return recs
}

// profitability covers the mutually exclusive loss / low-margin pair
func profitability(m types.Metrics) (types.Advisory, bool) {
	margin := m.ProfitMargin

	if margin < 0 {
		figures := map[string]float64{
			FigureMargin:        margin,
			FigureCostReduction: math.Abs(m.NetProfit),
		}
		if m.MonthlyRevenue > 0 {
			figures[FigurePriceIncreasePercent] = math.Ceil((m.TotalCosts()/m.MonthlyRevenue-1)*100 + 10)
		}
		if price := m.Inputs.PricePerCustomer; price > 0 {
			figures[FigureCustomersNeeded] = math.Ceil(m.TotalCosts()/price - m.Inputs.Customers)
		}
		return types.Advisory{
			Code:     CodeOperatingLoss,
			Category: CategoryProfitability,
			Severity: types.SeverityDanger,
			Title:    "Critical: Operating at a Loss",
			Figures:  figures,
		}, true
	}

	if margin < HealthyMargin {
		return types.Advisory{
			Code:     CodeLowMargin,
			Category: CategoryProfitability,
			Severity: types.SeverityWarning,
			Title:    "Low Profit Margin",
			Figures:  map[string]float64{FigureMargin: margin},
			Suggestions: []string{
				"Optimizing infrastructure costs",
				"Implementing value-based pricing tiers",
				"Reducing image sizes or implementing compression",
			},
		}, true
	}

	return types.Advisory{}, false
}

// Optimizations lists savings opportunities. They are advisory only and
// never applied to the metrics.
func Optimizations(m types.Metrics) []types.Advisory {
	var opts []types.Advisory

	if m.StorageGB() > CompressionStorageGB {
		opts = append(opts, types.Advisory{
			Code:     CodeImageCompression,
			Category: CategoryStorage,
			Severity: types.SeverityInfo,
			Title:    "Image Compression (WebP, 30% reduction)",
			Figures:  map[string]float64{FigureSavings: m.Costs.StorageProvider.Storage.Cost * CompressionSavings},
		})
	}

	if m.BandwidthGB() > CDNBandwidthGB {
		opts = append(opts, types.Advisory{
			Code:     CodeCDNLazyLoading,
			Category: CategoryBandwidth,
			Severity: types.SeverityInfo,
			Title:    "CDN Caching + Lazy Loading (40% reduction)",
			Figures:  map[string]float64{FigureSavings: m.Costs.StorageProvider.Egress.Cost * CDNSavings},
		})
	}

	if price := m.Inputs.PricePerCustomer; price < PriceBumpCeiling {
		opts = append(opts, types.Advisory{
			Code:     CodePriceIncrease,
			Category: CategoryPricing,
			Severity: types.SeverityInfo,
			Title:    "Price Increase",
			Figures: map[string]float64{
				FigureNewPrice:          price + PriceBump,
				FigureAdditionalRevenue: m.Inputs.Customers * PriceBump,
			},
		})
	}

	return opts
}

// Risks enumerates High and Medium risks in a fixed order
func (a *Advisor) Risks(m types.Metrics) []types.Risk {
	var risks []types.Risk
	margin := m.ProfitMargin
	churn := m.Inputs.MonthlyChurnPercent

	if margin < 0 {
		risks = append(risks, types.Risk{Code: RiskLoss, Level: types.RiskHigh,
			Description: "Operating at a loss with no clear path to profitability"})
	}
	if churn > ExtremeChurn {
		risks = append(risks, types.Risk{Code: RiskExtremeChurn, Level: types.RiskHigh,
			Description: "Very high churn rate threatens business sustainability"})
	}
	if m.GrossMargin < PoorGrossMargin {
		risks = append(risks, types.Risk{Code: RiskPoorUnitEconomics, Level: types.RiskHigh,
			Description: "Poor unit economics make scaling difficult"})
	}
	if churn > ElevatedChurn && churn <= ExtremeChurn {
		risks = append(risks, types.Risk{Code: RiskElevatedChurn, Level: types.RiskMedium,
			Description: "Elevated churn rate needs attention"})
	}
	if m.BandwidthGB() > a.tiers.Storage.Egress.IncludedQuota*2 {
		risks = append(risks, types.Risk{Code: RiskBandwidthExposure, Level: types.RiskMedium,
			Description: "High bandwidth costs may impact profitability at scale"})
	}
	if margin > 0 && margin < ThinMargin {
		risks = append(risks, types.Risk{Code: RiskThinBuffer, Level: types.RiskMedium,
			Description: "Low margins provide little buffer for unexpected costs"})
	}

	return risks
}

// MarginIndicator grades the profit margin into four bands
func MarginIndicator(m types.Metrics) types.Advisory {
	a := types.Advisory{
		Category: CategoryProfitability,
		Figures:  map[string]float64{FigureMargin: m.ProfitMargin},
	}

	switch margin := m.ProfitMargin; {
	case margin >= ExcellentMargin:
		a.Code, a.Severity, a.Title = CodeMarginExcellent, types.SeverityInfo, "Excellent margin! Very healthy SaaS business."
	case margin >= HealthyMargin:
		a.Code, a.Severity, a.Title = CodeMarginGood, types.SeverityInfo, "Good margin. Room for optimization and growth."
	case margin >= 0:
		a.Code, a.Severity, a.Title = CodeMarginLow, types.SeverityWarning, "Low margin. Consider cost optimization or pricing increase."
	default:
		a.Code, a.Severity, a.Title = CodeMarginLoss, types.SeverityDanger, "Operating at a loss! Critical: increase pricing or reduce costs."
	}

	return a
}

// ScalingAlert reports the first quota or margin pressure found
func (a *Advisor) ScalingAlert(m types.Metrics) types.Advisory {
	storageQuota := a.tiers.Storage.Storage.IncludedQuota
	egressQuota := a.tiers.Storage.Egress.IncludedQuota

	switch {
	case m.StorageGB() > storageQuota*ScalingQuotaShare:
		return types.Advisory{
			Code: CodeScalingStorage, Category: CategoryStorage, Severity: types.SeverityWarning,
			Title:   "Storage Alert",
			Figures: map[string]float64{FigureUtilization: m.Efficiency.StorageUtilization},
		}
	case m.BandwidthGB() > egressQuota*ScalingQuotaShare:
		return types.Advisory{
			Code: CodeScalingBandwidth, Category: CategoryBandwidth, Severity: types.SeverityWarning,
			Title:   "Bandwidth Alert",
			Figures: map[string]float64{FigureUtilization: m.Efficiency.BandwidthUtilization},
		}
	case m.GrossMargin < GoodGrossMargin:
		return types.Advisory{
			Code: CodeScalingGrossMargin, Category: CategoryInfrastructure, Severity: types.SeverityInfo,
			Title:   "Low Gross Margin",
			Figures: map[string]float64{FigureGrossMargin: m.GrossMargin},
		}
	default:
		return types.Advisory{
			Code: CodeScalingNormal, Category: CategoryInfrastructure, Severity: types.SeverityInfo,
			Title: "Infrastructure Costs Normal",
		}
	}
}
