package advisory

// Recommendation and optimization codes
const (
	CodeOperatingLoss    = "operating_loss"
	CodeLowMargin        = "low_margin"
	CodeInfraCostHigh    = "infra_cost_high"
	CodeHighChurn        = "high_churn"
	CodeStorageOverage   = "storage_overage"
	CodeBandwidthOverage = "bandwidth_overage"
	CodeHealthy          = "healthy"

	CodeImageCompression = "image_compression"
	CodeCDNLazyLoading   = "cdn_lazy_loading"
	CodePriceIncrease    = "price_increase"

	CodeMarginExcellent = "margin_excellent"
	CodeMarginGood      = "margin_good"
	CodeMarginLow       = "margin_low"
	CodeMarginLoss      = "margin_loss"

	CodeScalingStorage     = "scaling_storage"
	CodeScalingBandwidth   = "scaling_bandwidth"
	CodeScalingGrossMargin = "scaling_gross_margin"
	CodeScalingNormal      = "scaling_normal"
)

// Risk codes
const (
	RiskLoss              = "loss"
	RiskExtremeChurn      = "extreme_churn"
	RiskPoorUnitEconomics = "poor_unit_economics"
	RiskElevatedChurn     = "elevated_churn"
	RiskBandwidthExposure = "bandwidth_cost_exposure"
	RiskThinBuffer        = "thin_buffer"
)

// Categories
const (
	CategoryOverall        = "overall"
	CategoryProfitability  = "profitability"
	CategoryInfrastructure = "infrastructure"
	CategoryRetention      = "retention"
	CategoryStorage        = "storage"
	CategoryBandwidth      = "bandwidth"
	CategoryPricing        = "pricing"
)

// Figure keys carried in Advisory.Figures
const (
	FigureMargin               = "margin"
	FigureGrossMargin          = "gross_margin"
	FigureChurn                = "churn"
	FigureCostReduction        = "cost_reduction"
	FigurePriceIncreasePercent = "price_increase_percent"
	FigureCustomersNeeded      = "customers_needed"
	FigureOverageGB            = "overage_gb"
	FigureOverageCost          = "overage_cost"
	FigureSavings              = "savings"
	FigureNewPrice             = "new_price"
	FigureAdditionalRevenue    = "additional_revenue"
	FigureUtilization          = "utilization"
)
