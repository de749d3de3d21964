package output

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"saas-economics/core/types"
)

// NotAvailable is shown for undefined ratios
const NotAvailable = "N/A"

// BreakEvenHorizon caps the months-to-break-even display
const BreakEvenHorizon = 999

// Money formats a dollar amount with cents and thousands separators
func Money(v float64) string {
	return money(v, 2)
}

// MoneyWhole formats a dollar amount rounded to whole dollars
func MoneyWhole(v float64) string {
	return money(v, 0)
}

func money(v float64, places int32) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	d := decimal.NewFromFloat(v).Round(places)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "$" + group(d.StringFixed(places))
}

// Number formats a plain figure with fixed decimals
func Number(v float64, places int32) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	d := decimal.NewFromFloat(v).Round(places)
	if d.IsNegative() {
		return "-" + group(d.Abs().StringFixed(places))
	}
	return group(d.StringFixed(places))
}

// Count formats a head count rounded to a whole number
func Count(v float64) string {
	return Number(v, 0)
}

// Percent formats a percentage with one decimal
func Percent(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).StringFixed(1) + "%"
}

// GB formats a data volume
func GB(v float64) string {
	return Number(v, 2) + " GB"
}

// UnboundedMoney formats a dollar figure that may be infinite
func UnboundedMoney(u types.Unbounded) string {
	return Money(u.Float())
}

// Months formats a month count that may be infinite
func Months(u types.Unbounded) string {
	if u.IsInf() {
		return "∞"
	}
	return Number(u.Float(), 1) + " mo"
}

// LTVCAC formats the LTV:CAC ratio as "x.y:1"
func LTVCAC(r types.Ratio) string {
	v, ok := r.Value()
	if !ok {
		return NotAvailable
	}
	if math.IsInf(v, 1) {
		return "∞:1"
	}
	return Number(v, 1) + ":1"
}

// Payback formats the CAC payback period as "x.y mo"
func Payback(r types.Ratio) string {
	v, ok := r.Value()
	if !ok {
		return NotAvailable
	}
	return Months(types.Unbounded(v))
}

// MonthsToBreakEven renders "Already profitable", the month count, or N/A
func MonthsToBreakEven(m types.Metrics) string {
	if m.Profitable {
		return "Already profitable"
	}
	v := m.MonthsToBreakEven.Float()
	if v > 0 && v < BreakEvenHorizon {
		return Number(v, 1)
	}
	return NotAvailable
}

// Ratio formats a plain ratio with two decimals, or N/A when zero
func Ratio(v float64) string {
	if v == 0 {
		return NotAvailable
	}
	return Number(v, 2) + "x"
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsInf(v, 1):
		return "∞", true
	case math.IsInf(v, -1):
		return "-∞", true
	case math.IsNaN(v):
		return NotAvailable, true
	}
	return "", false
}

// group inserts thousands separators into an unsigned fixed-point string
func group(s string) string {
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + frac
}

