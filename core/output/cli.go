package output

import (
	"fmt"
	"io"

	"saas-economics/core/types"
	"saas-economics/core/ui"
)

// CLIFormatter renders a colored terminal report
type CLIFormatter struct {
	opts Options
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the report
func (f *CLIFormatter) Render(w io.Writer, result *Result) error {
	out := ui.NewWriter(w, f.opts.NoColor)
	if f.opts.Verbose {
		out.SetVerbosity(2)
	}
	report := result.Report
	sections := f.opts.sections()

	if sections.Has(SectionMetrics) {
		f.metrics(out, report.Metrics)
	}
	if sections.Has(SectionProjection) {
		f.projection(out, report.Projection)
	}
	if sections.Has(SectionScenarios) {
		f.scenarios(out, "Growth Scenarios", report.GrowthScenarios)
		f.scenarios(out, "Pricing Scenarios", report.PricingScenarios)
	}
	if sections.Has(SectionAdvice) {
		f.advice(out, report.Advice, result.Advice)
	}

	if result.Metadata.RequestID != "" {
		out.Println("")
		out.Debug("run %s  inputs %s", result.Metadata.RequestID, shortHash(result.Metadata.InputHash))
	}

	return out.Err()
}

func (f *CLIFormatter) metrics(out *ui.Writer, m types.Metrics) {
	out.Header("Unit Economics Summary")

	summary := out.NewProfitSummary()
	summary.Revenue = Money(m.MonthlyRevenue)
	summary.Costs = Money(m.TotalCosts())
	summary.Profit = Money(m.NetProfit)
	summary.Margin = Percent(m.ProfitMargin)
	summary.Positive = m.NetProfit >= 0
	summary.Render()

	u := m.Costs.Usage
	out.Header("Usage")
	out.KeyValue("Images", Count(u.TotalImages))
	out.KeyValue("Storage", GB(u.StorageGB))
	out.KeyValue("Image bandwidth", GB(u.ImageBandwidthGB))
	out.KeyValue("Monthly views", Count(u.MonthlyViews))
	if m.Costs.HostingProvider.Enabled {
		out.KeyValue("Hosting bandwidth", GB(u.HostingBandwidthGB))
	}

	out.Header("Monthly Costs")
	table := out.NewTable("Line", "Usage", "Overage", "Cost")
	sp := m.Costs.StorageProvider
	table.AddRow("Storage provider base", "", "", Money(sp.BaseFee))
	table.AddRow("Storage", GB(sp.Storage.Usage), GB(sp.Storage.OverageUnits), Money(sp.Storage.Cost))
	table.AddRow("Egress", GB(sp.Egress.Usage), GB(sp.Egress.OverageUnits), Money(sp.Egress.Cost))
	if hp := m.Costs.HostingProvider; hp.Enabled {
		table.AddRow("Hosting seats", Count(hp.Seats), "", Money(hp.BaseFee))
		table.AddRow("Hosting bandwidth", GB(hp.Bandwidth.Usage), GB(hp.Bandwidth.OverageUnits), Money(hp.Bandwidth.Cost))
	}
	table.AddRow("Salaries", "", "", Money(m.Inputs.EmployeeSalaries))
	table.AddRow("Marketing", "", "", Money(m.Inputs.MarketingSpend))
	table.AddRow("Other", "", "", Money(m.Inputs.OtherMonthlyCosts))
	table.AddColoredRow([]string{ui.Bold, "", "", ui.Bold}, "Total", "", "", Money(m.TotalCosts()))
	table.Render()
	out.Println("")
	out.KeyValue("Infrastructure", Money(m.Costs.InfrastructureCosts))
	out.KeyValue("Fixed / variable", Money(m.Costs.FixedCosts)+" / "+Money(m.Costs.VariableCosts))

	out.Header("Revenue & Margins")
	out.KeyValue("ARR", Money(m.ARR))
	out.KeyValue("Gross margin", Percent(m.GrossMargin))
	out.KeyValue("Variable cost ratio", Percent(m.VariableCostRatio))
	if m.BurnRate > 0 {
		out.KeyValue("Burn rate", out.Color(ui.Red, Money(m.BurnRate)+"/mo"))
	}

	out.Header("Per Customer")
	out.KeyValue("Cost per customer", Money(m.CostPerCustomer))
	out.KeyValue("Profit per customer", Money(m.ProfitPerCustomer))
	out.KeyValue("Price / cost", Ratio(m.PriceToCostRatio))
	out.KeyValue("Average lifetime", Months(m.AvgLifetimeMonths))
	out.KeyValue("LTV", UnboundedMoney(m.LTV))
	out.KeyValue("New customers / month", Number(m.NewCustomersThisPeriod, 1))
	out.KeyValue("CAC", UnboundedMoney(m.CAC))
	out.KeyValue("LTV:CAC", LTVCAC(m.LTVCACRatio))
	out.KeyValue("CAC payback", Payback(m.CACPaybackMonths))

	out.Header("Break-even")
	out.KeyValue("Customers needed", Count(m.BreakEvenCustomers))
	out.KeyValue("MRR needed", Money(m.BreakEvenMRR))
	out.KeyValue("Months to break-even", MonthsToBreakEven(m))

	e := m.Efficiency
	out.Header("Infrastructure Efficiency")
	out.KeyValue("Storage $/GB", Number(e.StorageCostPerGB, 4))
	out.KeyValue("Bandwidth $/GB", Number(e.BandwidthCostPerGB, 4))
	out.KeyValue("Storage quota used", Percent(e.StorageUtilization))
	out.KeyValue("Egress quota used", Percent(e.BandwidthUtilization))
}

func (f *CLIFormatter) projection(out *ui.Writer, p types.ProjectionResult) {
	out.Header("Projection")

	if f.opts.ShowMonths {
		out.SubHeader("Month by month")
		table := out.NewTable("Month", "Customers", "New", "Churned", "Revenue", "Cost", "Profit")
		for _, s := range p.Months {
			table.AddColoredRow([]string{"", "", "", "", "", "", ui.SignColor(s.Profit)},
				Count(float64(s.Month)), Number(s.Customers, 1), Number(s.NewCustomers, 1), Number(s.ChurnedCustomers, 1),
				MoneyWhole(s.Revenue), MoneyWhole(s.Cost), MoneyWhole(s.Profit))
		}
		table.Render()
		out.Println("")
	}

	out.SubHeader(fmt.Sprintf("%d-month totals", len(p.Months)))
	out.KeyValue("Customers", Number(p.StartCustomers, 0)+" → "+Number(p.EndCustomers, 1))
	out.KeyValue("Gained / lost", Number(p.CumulativeNewCustomers, 1)+" / "+Number(p.CumulativeChurnedCustomers, 1))
	out.KeyValue("Cumulative revenue", Money(p.CumulativeRevenue))
	out.KeyValue("Cumulative cost", Money(p.CumulativeCost))
	out.KeyValue("Cumulative profit", out.Color(ui.SignColor(p.CumulativeProfit), Money(p.CumulativeProfit)))
	if p.FirstNegativeMonth > 0 {
		out.Warning("Churn outpaces growth: customers drop below zero in month %d", p.FirstNegativeMonth)
	}
}

func (f *CLIFormatter) scenarios(out *ui.Writer, title string, results []types.ScenarioResult) {
	if len(results) == 0 {
		return
	}
	out.Header(title)

	pricing := results[0].Kind == types.ScenarioPricing
	headers := []string{"Scenario", "Customers", "Revenue", "Cost", "Profit", "Margin"}
	if pricing {
		headers = append(headers, "Break-even")
	}
	table := out.NewTable(headers...)

	for _, r := range results {
		cells := []string{r.Label, Count(r.EndingCustomers), MoneyWhole(r.Revenue), MoneyWhole(r.Cost), MoneyWhole(r.Profit), Percent(r.Margin)}
		if pricing {
			v, _ := r.BreakEven()
			cells = append(cells, Count(v))
		}
		table.AddColoredRow([]string{"", "", "", "", ui.SignColor(r.Profit)}, cells...)
	}
	table.Render()
}

func (f *CLIFormatter) advice(out *ui.Writer, bundle types.AdviceBundle, text AdviceText) {
	out.Header("Business Health")
	for _, card := range bundle.Health {
		out.KeyValue(card.Label, out.Color(ui.ToneColor(card.Tone), card.Status))
	}
	out.Println("")
	out.Severity(text.MarginIndicator.Severity, "%s", text.MarginIndicator.Title)
	out.Severity(text.ScalingAlert.Severity, "%s", text.ScalingAlert.Line())

	out.Header("Recommendations")
	for _, msg := range text.Recommendations {
		out.Severity(msg.Severity, "%s", out.Color(ui.Bold, msg.Title))
		if msg.Body != "" {
			out.Println("  %s", msg.Body)
		}
		for _, b := range msg.Bullets {
			out.Println("    • %s", b)
		}
	}

	if len(text.Optimizations) > 0 {
		out.Header("Optimization Opportunities")
		for _, msg := range text.Optimizations {
			out.Println("  %s  %s", msg.Title, out.Color(ui.Green, msg.Body))
		}
	}

	out.Header("Risk Assessment")
	if len(bundle.Risks) == 0 {
		out.Success("%s", text.Risks[0])
		return
	}
	for i, r := range bundle.Risks {
		if r.Level == types.RiskHigh {
			out.Error("%s", text.Risks[i])
		} else {
			out.Warning("%s", text.Risks[i])
		}
	}
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
