package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"saas-economics/core/engine"
	"saas-economics/core/types"
	"saas-economics/internal/errors"
)

func referenceResult(t *testing.T, mutate func(*types.InputParameters)) *Result {
	t.Helper()
	in := types.InputParameters{
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
	if mutate != nil {
		mutate(&in)
	}
	report := engine.NewEngine(engine.DefaultEngineConfig()).Run(in)
	return NewResult(report, Metadata{RequestID: "run-1", InputHash: strings.Repeat("ab", 32), EngineVersion: "test"})
}

func render(t *testing.T, format Format, opts Options, result *Result) string {
	t.Helper()
	f, err := New(format, opts)
	if err != nil {
		t.Fatalf("New(%s): %v", format, err)
	}
	var buf bytes.Buffer
	if err := f.Render(&buf, result); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"cli", "JSON", " markdown ", "md"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	if _, err := ParseFormat("html"); !errors.IsType(err, errors.TypeNotSupported) {
		t.Errorf("expected NOT_SUPPORTED, got %v", err)
	}
}

func TestCLIFormatter(t *testing.T) {
	out := render(t, FormatCLI, Options{NoColor: true, ShowMonths: true}, referenceResult(t, nil))

	for _, want := range []string{
		"Monthly Revenue: $4,900.00",
		"Total Costs:     $120.00",
		"Already profitable",
		"19.53 GB",
		"Churn Rate",
		"Excellent margin! Very healthy SaaS business.",
		"No major risks identified",
		"Current price ($49/mo)",
		"▸ Month by month",
		"▸ 12-month totals",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("CLI output missing %q", want)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("color codes written with NoColor")
	}
}

func TestCLIFormatterSections(t *testing.T) {
	out := render(t, FormatCLI, Options{NoColor: true, Sections: SectionScenarios}, referenceResult(t, nil))

	if !strings.Contains(out, "Pricing Scenarios") {
		t.Error("scenarios section missing")
	}
	if strings.Contains(out, "Unit Economics Summary") || strings.Contains(out, "Risk Assessment") {
		t.Error("unselected sections rendered")
	}
}

func TestCLIFormatterUndefinedRatios(t *testing.T) {
	result := referenceResult(t, func(in *types.InputParameters) {
		in.MonthlyGrowthPercent = 0
		in.MarketingSpend = 500
	})
	out := render(t, FormatCLI, Options{NoColor: true, Sections: SectionMetrics}, result)

	if !strings.Contains(out, "LTV:CAC:") || !strings.Contains(out, "N/A") {
		t.Errorf("expected N/A ratio rendering:\n%s", out)
	}
	if !strings.Contains(out, "∞") {
		t.Error("expected infinite CAC rendering")
	}
}

func TestCLIFormatterNegativeProjection(t *testing.T) {
	result := referenceResult(t, func(in *types.InputParameters) {
		in.MonthlyGrowthPercent = 0
		in.MonthlyChurnPercent = 150
	})
	out := render(t, FormatCLI, Options{NoColor: true, Sections: SectionProjection}, result)

	if result.Report.Projection.EndCustomers < 0 {
		t.Fatalf("expected the oscillating projection to end positive, got %v", result.Report.Projection.EndCustomers)
	}
	if !strings.Contains(out, "customers drop below zero in month 1") {
		t.Errorf("expected a negative-customer warning:\n%s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	result := referenceResult(t, func(in *types.InputParameters) { in.MonthlyChurnPercent = 0 })
	out := render(t, FormatJSON, Options{}, result)

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"report", "messages", "metadata"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing %q", key)
		}
	}
	if !strings.Contains(out, `"avg_lifetime_months": "Infinity"`) {
		t.Error("infinite lifetime should encode as \"Infinity\"")
	}
}

func TestMarkdownFormatter(t *testing.T) {
	result := referenceResult(t, func(in *types.InputParameters) { in.EmployeeSalaries = 5000 })
	out := render(t, FormatMarkdown, Options{ShowMonths: true}, result)

	for _, want := range []string{
		"# Unit Economics Report",
		"| Net profit | -$220.00 |",
		"## 12-Month Projection",
		"### Critical: Operating at a Loss",
		"- High Risk: Operating at a loss with no clear path to profitability",
		"_inputs abababababab · engine test_",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownPricingBreakEven(t *testing.T) {
	out := render(t, FormatMarkdown, Options{Sections: SectionScenarios}, referenceResult(t, nil))

	for _, want := range []string{
		"| Scenario | Customers | Revenue | Cost | Profit | Margin | Break-even |",
		"|---|---:|---:|---:|---:|---:|---:|",
		"| Current price ($49/mo) | 100 | $4,900 | $120 | $4,780 | 97.6% | 3 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}

	growth := out[strings.Index(out, "## Growth Scenarios"):strings.Index(out, "## Pricing Scenarios")]
	if strings.Contains(growth, "Break-even") {
		t.Error("growth scenarios should not carry a break-even column")
	}
}
