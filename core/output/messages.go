package output

import (
	"fmt"

	"saas-economics/core/advisory"
	"saas-economics/core/types"
)

// NoRisks is shown when the risk list is empty
const NoRisks = "No major risks identified. Continue monitoring key metrics."

// Message is an advisory rendered for people
type Message struct {
	Code     string         `json:"code"`
	Severity types.Severity `json:"severity"`
	Title    string         `json:"title"`
	Body     string         `json:"body,omitempty"`
	Bullets  []string       `json:"bullets,omitempty"`
}

// AdviceText is the rendered form of an AdviceBundle
type AdviceText struct {
	Recommendations []Message `json:"recommendations"`
	Optimizations   []Message `json:"optimizations"`
	Risks           []string  `json:"risks"`
	MarginIndicator Message   `json:"margin_indicator"`
	ScalingAlert    Message   `json:"scaling_alert"`
}

// RenderAdvice renders every advisory in a bundle
func RenderAdvice(b types.AdviceBundle) AdviceText {
	text := AdviceText{
		Recommendations: make([]Message, 0, len(b.Recommendations)),
		Optimizations:   make([]Message, 0, len(b.Optimizations)),
		Risks:           RiskLines(b.Risks),
		MarginIndicator: Describe(b.MarginIndicator),
		ScalingAlert:    Describe(b.ScalingAlert),
	}
	for _, a := range b.Recommendations {
		text.Recommendations = append(text.Recommendations, Describe(a))
	}
	for _, a := range b.Optimizations {
		text.Optimizations = append(text.Optimizations, Describe(a))
	}
	return text
}

// RiskLines renders risks as "<Level> Risk: <description>", or the
// no-risk line when there are none
func RiskLines(risks []types.Risk) []string {
	if len(risks) == 0 {
		return []string{NoRisks}
	}
	lines := make([]string, 0, len(risks))
	for _, r := range risks {
		lines = append(lines, fmt.Sprintf("%s Risk: %s", r.Level, r.Description))
	}
	return lines
}

// Describe renders one advisory from its code and figures
func Describe(a types.Advisory) Message {
	msg := Message{
		Code:     a.Code,
		Severity: a.Severity,
		Title:    a.Title,
		Bullets:  a.Suggestions,
	}
	fig := func(name string) float64 {
		v, _ := a.Figure(name)
		return v
	}

	switch a.Code {
	case advisory.CodeOperatingLoss:
		msg.Body = "Your business is currently unprofitable. Consider:"
		var bullets []string
		if v, ok := a.Figure(advisory.FigurePriceIncreasePercent); ok {
			bullets = append(bullets, fmt.Sprintf("Increasing pricing by %s%% to reach profitability", Number(v, 0)))
		}
		bullets = append(bullets, fmt.Sprintf("Reducing costs by %s/month", MoneyWhole(fig(advisory.FigureCostReduction))))
		if v, ok := a.Figure(advisory.FigureCustomersNeeded); ok {
			bullets = append(bullets, fmt.Sprintf("Acquiring %s more customers at current pricing", Number(v, 0)))
		}
		msg.Bullets = bullets

	case advisory.CodeLowMargin:
		msg.Body = fmt.Sprintf("Your margin of %s is below healthy SaaS benchmarks (20-30%%). Consider:", Percent(fig(advisory.FigureMargin)))

	case advisory.CodeInfraCostHigh:
		msg.Body = fmt.Sprintf("Gross margin of %s suggests infrastructure costs are eating into profits. Consider:", Percent(fig(advisory.FigureGrossMargin)))

	case advisory.CodeHighChurn:
		msg.Body = fmt.Sprintf("%s monthly churn is concerning. Focus on:", Percent(fig(advisory.FigureChurn)))

	case advisory.CodeStorageOverage:
		msg.Body = fmt.Sprintf("You're paying for %s GB of storage overage (%s/mo). Consider:",
			Number(fig(advisory.FigureOverageGB), 0), MoneyWhole(fig(advisory.FigureOverageCost)))

	case advisory.CodeBandwidthOverage:
		msg.Body = fmt.Sprintf("You're paying for %s GB of bandwidth overage (%s/mo). Consider:",
			Number(fig(advisory.FigureOverageGB), 0), MoneyWhole(fig(advisory.FigureOverageCost)))

	case advisory.CodeHealthy:
		msg.Body = "Your key metrics are in good shape. Focus on:"

	case advisory.CodeImageCompression, advisory.CodeCDNLazyLoading:
		msg.Body = fmt.Sprintf("Save ~%s/mo", MoneyWhole(fig(advisory.FigureSavings)))

	case advisory.CodePriceIncrease:
		msg.Title = fmt.Sprintf("Price Increase to %s/mo (+%s)", MoneyWhole(fig(advisory.FigureNewPrice)), MoneyWhole(advisory.PriceBump))
		msg.Body = fmt.Sprintf("+%s/mo revenue", MoneyWhole(fig(advisory.FigureAdditionalRevenue)))

	case advisory.CodeScalingStorage:
		msg.Body = "Approaching or exceeding included storage quota. Usage-based costs increasing."

	case advisory.CodeScalingBandwidth:
		msg.Body = "Approaching or exceeding included bandwidth quota. Usage-based costs increasing."

	case advisory.CodeScalingGrossMargin:
		msg.Body = "Low gross margin detected. Consider pricing optimization for better unit economics."

	case advisory.CodeScalingNormal:
		msg.Body = "Infrastructure costs are within normal ranges. Continue monitoring as you scale."
	}

	return msg
}

// Line renders a message on one line: "Title: body"
func (m Message) Line() string {
	if m.Body == "" {
		return m.Title
	}
	return m.Title + ": " + m.Body
}
