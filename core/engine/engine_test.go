package engine

import (
	"encoding/json"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"saas-economics/core/types"
)

func referenceInputs() types.InputParameters {
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

func TestRun(t *testing.T) {
	report := NewEngine(DefaultEngineConfig()).Run(referenceInputs())

	if report.Metrics.MonthlyRevenue != 4900 {
		t.Errorf("expected revenue 4900, got %v", report.Metrics.MonthlyRevenue)
	}
	if len(report.Projection.Months) != 12 {
		t.Errorf("expected 12 projected months, got %d", len(report.Projection.Months))
	}
	if len(report.GrowthScenarios) != 3 || len(report.PricingScenarios) != 3 {
		t.Errorf("expected 3+3 scenarios, got %d+%d", len(report.GrowthScenarios), len(report.PricingScenarios))
	}
	if len(report.Advice.Health) != 4 {
		t.Errorf("expected 4 health cards, got %d", len(report.Advice.Health))
	}
	if report.Tiers.Storage.BaseFee != 120 {
		t.Errorf("report should carry the tier table, got %+v", report.Tiers)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	e := NewEngine(DefaultEngineConfig())
	in := referenceInputs()
	in.MarketingSpend = 900
	in.UseSecondaryHosting = true
	in.HostingBandwidthMultiplier = 3

	a := e.Run(in)
	b := e.Run(in)

	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different reports")
	}
}

func TestReportMarshalsWithInfiniteFigures(t *testing.T) {
	in := referenceInputs()
	in.MonthlyChurnPercent = 0
	in.MonthlyGrowthPercent = 0
	in.MarketingSpend = 250

	report := NewEngine(DefaultEngineConfig()).Run(in)
	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("report should marshal with infinite CAC and lifetime: %v", err)
	}

	var decoded struct {
		Metrics struct {
			CAC         any `json:"cac"`
			LTVCACRatio any `json:"ltv_cac_ratio"`
		} `json:"metrics"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Metrics.CAC != "Infinity" {
		t.Errorf("expected CAC \"Infinity\", got %v", decoded.Metrics.CAC)
	}
	if decoded.Metrics.LTVCACRatio != nil {
		t.Errorf("expected null LTV:CAC, got %v", decoded.Metrics.LTVCACRatio)
	}
}

func TestEngineConfigDefaults(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.ProjectionMonths = 0
	cfg.Scenarios.Months = 0

	e := NewEngine(cfg)
	if e.Config().ProjectionMonths != 12 || e.Config().Scenarios.Months != 12 {
		t.Errorf("expected horizons to default to 12, got %+v", e.Config())
	}
}

func TestNegativeProjectionIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := NewEngine(DefaultEngineConfig(), WithLogger(zap.New(core)))

	in := referenceInputs()
	in.MonthlyGrowthPercent = 0
	in.MonthlyChurnPercent = 150
	e.Run(in)

	if logs.FilterMessage("projection went below zero customers").Len() == 0 {
		t.Error("expected a warning for the negative projection")
	}
	if logs.FilterMessage("computed metrics").Len() != 1 {
		t.Error("expected one metrics debug line")
	}
}

func TestNegativeProjectionWarning(t *testing.T) {
	tests := []struct {
		name   string
		churn  float64
		months int
		warn   bool
	}{
		{"healthy", 5, 12, false},
		{"ends negative", 150, 3, true},
		{"negative mid-run", 150, 12, true},
		{"runaway churn", 250, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			cfg := DefaultEngineConfig()
			cfg.ProjectionMonths = tt.months
			e := NewEngine(cfg, WithLogger(zap.New(core)))

			in := referenceInputs()
			in.MonthlyGrowthPercent = 0
			in.MonthlyChurnPercent = tt.churn
			p := e.Project(in)

			warnings := logs.FilterMessage("projection went below zero customers").All()
			if (len(warnings) > 0) != tt.warn {
				t.Fatalf("expected warning %v, got %d warnings (end %v)", tt.warn, len(warnings), p.EndCustomers)
			}
			if tt.warn && warnings[0].ContextMap()["month"] != int64(1) {
				t.Errorf("expected the first negative month to be 1, got %v", warnings[0].ContextMap()["month"])
			}
		})
	}
}
