package output

import (
	"fmt"
	"io"
	"strings"

	"saas-economics/core/types"
)

// MarkdownFormatter renders a markdown report suitable for docs or chat
type MarkdownFormatter struct {
	opts Options
}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report
func (f *MarkdownFormatter) Render(w io.Writer, result *Result) error {
	var b strings.Builder
	report := result.Report
	sections := f.opts.sections()

	b.WriteString("# Unit Economics Report\n\n")

	if sections.Has(SectionMetrics) {
		m := report.Metrics
		b.WriteString("## Summary\n\n")
		row := func(label, value string) { fmt.Fprintf(&b, "| %s | %s |\n", label, value) }
		b.WriteString("| Metric | Value |\n|---|---|\n")
		row("Monthly revenue", Money(m.MonthlyRevenue))
		row("Total costs", Money(m.TotalCosts()))
		row("Net profit", Money(m.NetProfit))
		row("Profit margin", Percent(m.ProfitMargin))
		row("Gross margin", Percent(m.GrossMargin))
		row("ARR", Money(m.ARR))
		row("Cost per customer", Money(m.CostPerCustomer))
		row("LTV", UnboundedMoney(m.LTV))
		row("CAC", UnboundedMoney(m.CAC))
		row("LTV:CAC", LTVCAC(m.LTVCACRatio))
		row("CAC payback", Payback(m.CACPaybackMonths))
		row("Break-even customers", Count(m.BreakEvenCustomers))
		row("Months to break-even", MonthsToBreakEven(m))
		b.WriteString("\n")

		sp := m.Costs.StorageProvider
		b.WriteString("## Costs\n\n| Line | Usage | Overage | Cost |\n|---|---:|---:|---:|\n")
		fmt.Fprintf(&b, "| Storage provider base | | | %s |\n", Money(sp.BaseFee))
		fmt.Fprintf(&b, "| Storage | %s | %s | %s |\n", GB(sp.Storage.Usage), GB(sp.Storage.OverageUnits), Money(sp.Storage.Cost))
		fmt.Fprintf(&b, "| Egress | %s | %s | %s |\n", GB(sp.Egress.Usage), GB(sp.Egress.OverageUnits), Money(sp.Egress.Cost))
		if hp := m.Costs.HostingProvider; hp.Enabled {
			fmt.Fprintf(&b, "| Hosting seats | %s | | %s |\n", Count(hp.Seats), Money(hp.BaseFee))
			fmt.Fprintf(&b, "| Hosting bandwidth | %s | %s | %s |\n", GB(hp.Bandwidth.Usage), GB(hp.Bandwidth.OverageUnits), Money(hp.Bandwidth.Cost))
		}
		fmt.Fprintf(&b, "| Salaries, marketing, other | | | %s |\n", Money(m.Costs.OtherCosts))
		fmt.Fprintf(&b, "| **Total** | | | **%s** |\n\n", Money(m.TotalCosts()))
	}

	if sections.Has(SectionProjection) {
		p := report.Projection
		fmt.Fprintf(&b, "## %d-Month Projection\n\n", len(p.Months))
		if f.opts.ShowMonths {
			b.WriteString("| Month | Customers | Revenue | Cost | Profit |\n|---:|---:|---:|---:|---:|\n")
			for _, s := range p.Months {
				fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", s.Month, Number(s.Customers, 1), MoneyWhole(s.Revenue), MoneyWhole(s.Cost), MoneyWhole(s.Profit))
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Customers go from %s to %s. Cumulative revenue %s, cost %s, profit %s.\n\n",
			Number(p.StartCustomers, 0), Number(p.EndCustomers, 1),
			Money(p.CumulativeRevenue), Money(p.CumulativeCost), Money(p.CumulativeProfit))
		if p.FirstNegativeMonth > 0 {
			fmt.Fprintf(&b, "> Churn outpaces growth: customers drop below zero in month %d.\n\n", p.FirstNegativeMonth)
		}
	}

	if sections.Has(SectionScenarios) {
		scenarioTable(&b, "Growth Scenarios", report.GrowthScenarios)
		scenarioTable(&b, "Pricing Scenarios", report.PricingScenarios)
	}

	if sections.Has(SectionAdvice) {
		text := result.Advice
		b.WriteString("## Business Health\n\n")
		for _, card := range report.Advice.Health {
			fmt.Fprintf(&b, "- **%s**: %s\n", card.Label, card.Status)
		}
		fmt.Fprintf(&b, "\n> %s\n>\n> %s\n\n", text.MarginIndicator.Title, text.ScalingAlert.Line())

		b.WriteString("## Recommendations\n\n")
		for _, msg := range text.Recommendations {
			fmt.Fprintf(&b, "### %s\n\n", msg.Title)
			if msg.Body != "" {
				fmt.Fprintf(&b, "%s\n\n", msg.Body)
			}
			for _, bullet := range msg.Bullets {
				fmt.Fprintf(&b, "- %s\n", bullet)
			}
			if len(msg.Bullets) > 0 {
				b.WriteString("\n")
			}
		}

		if len(text.Optimizations) > 0 {
			b.WriteString("## Optimization Opportunities\n\n")
			for _, msg := range text.Optimizations {
				fmt.Fprintf(&b, "- %s: %s\n", msg.Title, msg.Body)
			}
			b.WriteString("\n")
		}

		b.WriteString("## Risks\n\n")
		for _, line := range text.Risks {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}

	if meta := result.Metadata; meta.InputHash != "" {
		fmt.Fprintf(&b, "\n---\n_inputs %s · engine %s_\n", shortHash(meta.InputHash), meta.EngineVersion)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func scenarioTable(b *strings.Builder, title string, results []types.ScenarioResult) {
	if len(results) == 0 {
		return
	}
	pricing := results[0].Kind == types.ScenarioPricing

	fmt.Fprintf(b, "## %s\n\n| Scenario | Customers | Revenue | Cost | Profit | Margin |", title)
	if pricing {
		b.WriteString(" Break-even |")
	}
	b.WriteString("\n|---|---:|---:|---:|---:|---:|")
	if pricing {
		b.WriteString("---:|")
	}
	b.WriteString("\n")

	for _, r := range results {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |",
			r.Label, Count(r.EndingCustomers), MoneyWhole(r.Revenue), MoneyWhole(r.Cost), MoneyWhole(r.Profit), Percent(r.Margin))
		if pricing {
			v, _ := r.BreakEven()
			fmt.Fprintf(b, " %s |", Count(v))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
