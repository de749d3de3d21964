// Package types - Advisory types
package types

// Severity grades an advisory
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// RiskLevel grades a risk
type RiskLevel string

const (
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Tone is the traffic-light shade of a health card
type Tone string

const (
	ToneGood Tone = "good"
	ToneFair Tone = "fair"
	TonePoor Tone = "poor"
)

// Advisory is a structured recommendation. Messages are rendered by the
// presentation layer from Code and Figures.
type Advisory struct {
	Code        string             `json:"code"`
	Category    string             `json:"category"`
	Severity    Severity           `json:"severity"`
	Title       string             `json:"title"`
	Figures     map[string]float64 `json:"figures,omitempty"`
	Suggestions []string           `json:"suggestions,omitempty"`
}

// Figure returns a numeric payload value and whether it is present
func (a Advisory) Figure(name string) (float64, bool) {
	v, ok := a.Figures[name]
	return v, ok
}

// Risk is a business risk flagged from the metrics
type Risk struct {
	Code        string    `json:"code"`
	Level       RiskLevel `json:"level"`
	Description string    `json:"description"`
}

// HealthCard is one traffic-light status tile
type HealthCard struct {
	Label  string `json:"label"`
	Status string `json:"status"`
	Tone   Tone   `json:"tone"`
}

// AdviceBundle is the full advisory output for one Metrics snapshot
type AdviceBundle struct {
	Health          []HealthCard `json:"health"`
	Recommendations []Advisory   `json:"recommendations"`
	Optimizations   []Advisory   `json:"optimizations"`
	Risks           []Risk       `json:"risks"`
	MarginIndicator Advisory     `json:"margin_indicator"`
	ScalingAlert    Advisory     `json:"scaling_alert"`
}

// HighRisks returns only the high-level risks
func (b AdviceBundle) HighRisks() []Risk {
	var out []Risk
	for _, r := range b.Risks {
		if r.Level == RiskHigh {
			out = append(out, r)
		}
	}
	return out
}
