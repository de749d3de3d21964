package output

import (
	"strings"
	"testing"

	"saas-economics/core/advisory"
	"saas-economics/core/types"
)

func TestDescribeOperatingLoss(t *testing.T) {
	msg := Describe(types.Advisory{
		Code:     advisory.CodeOperatingLoss,
		Severity: types.SeverityDanger,
		Title:    "Critical: Operating at a Loss",
		Figures: map[string]float64{
			advisory.FigureCostReduction:        630,
			advisory.FigurePriceIncreasePercent: 139,
			advisory.FigureCustomersNeeded:      13,
		},
	})

	want := []string{
		"Increasing pricing by 139% to reach profitability",
		"Reducing costs by $630/month",
		"Acquiring 13 more customers at current pricing",
	}
	if len(msg.Bullets) != len(want) {
		t.Fatalf("expected %d bullets, got %v", len(want), msg.Bullets)
	}
	for i := range want {
		if msg.Bullets[i] != want[i] {
			t.Errorf("bullet %d = %q, want %q", i, msg.Bullets[i], want[i])
		}
	}
}

func TestDescribeOperatingLossOmitsMissingFigures(t *testing.T) {
	msg := Describe(types.Advisory{
		Code:    advisory.CodeOperatingLoss,
		Figures: map[string]float64{advisory.FigureCostReduction: 120},
	})
	if len(msg.Bullets) != 1 || msg.Bullets[0] != "Reducing costs by $120/month" {
		t.Errorf("expected only the cost bullet, got %v", msg.Bullets)
	}
}

func TestDescribeFigures(t *testing.T) {
	tests := []struct {
		name string
		in   types.Advisory
		want string
	}{
		{
			name: "low margin",
			in:   types.Advisory{Code: advisory.CodeLowMargin, Figures: map[string]float64{advisory.FigureMargin: 12.34}},
			want: "Your margin of 12.3% is below healthy SaaS benchmarks (20-30%). Consider:",
		},
		{
			name: "bandwidth overage",
			in: types.Advisory{Code: advisory.CodeBandwidthOverage, Figures: map[string]float64{
				advisory.FigureOverageGB: 1703.125, advisory.FigureOverageCost: 153.28,
			}},
			want: "You're paying for 1,703 GB of bandwidth overage ($153/mo). Consider:",
		},
		{
			name: "compression saving",
			in:   types.Advisory{Code: advisory.CodeImageCompression, Figures: map[string]float64{advisory.FigureSavings: 12.6}},
			want: "Save ~$13/mo",
		},
		{
			name: "high churn",
			in:   types.Advisory{Code: advisory.CodeHighChurn, Figures: map[string]float64{advisory.FigureChurn: 8}},
			want: "8.0% monthly churn is concerning. Focus on:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.in).Body; got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribePriceIncreaseRetitles(t *testing.T) {
	msg := Describe(types.Advisory{
		Code:    advisory.CodePriceIncrease,
		Title:   "Price Increase",
		Figures: map[string]float64{advisory.FigureNewPrice: 39, advisory.FigureAdditionalRevenue: 1000},
	})
	if msg.Title != "Price Increase to $39/mo (+$10)" {
		t.Errorf("title = %q", msg.Title)
	}
	if msg.Body != "+$1,000/mo revenue" {
		t.Errorf("body = %q", msg.Body)
	}
}

func TestRiskLines(t *testing.T) {
	if lines := RiskLines(nil); len(lines) != 1 || !strings.HasPrefix(lines[0], "No major risks identified") {
		t.Errorf("expected the no-risk line, got %v", lines)
	}

	lines := RiskLines([]types.Risk{{Level: types.RiskHigh, Description: "Very high churn rate threatens business sustainability"}})
	if lines[0] != "High Risk: Very high churn rate threatens business sustainability" {
		t.Errorf("got %q", lines[0])
	}
}
