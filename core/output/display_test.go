package output

import (
	"math"
	"testing"

	"saas-economics/core/types"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{120, "$120.00"},
		{4900, "$4,900.00"},
		{1234567.891, "$1,234,567.89"},
		{-630, "-$630.00"},
		{0.005, "$0.01"},
		{math.Inf(1), "∞"},
		{math.NaN(), "N/A"},
	}

	for _, tt := range tests {
		if got := Money(tt.in); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMoneyWhole(t *testing.T) {
	if got := MoneyWhole(58800.4); got != "$58,800" {
		t.Errorf("got %q", got)
	}
	if got := MoneyWhole(-2.5); got != "-$3" {
		t.Errorf("half should round away from zero, got %q", got)
	}
}

func TestPercentAndGB(t *testing.T) {
	if got := Percent(97.5510204); got != "97.6%" {
		t.Errorf("Percent = %q", got)
	}
	if got := GB(19.53125); got != "19.53 GB" {
		t.Errorf("GB = %q", got)
	}
	if got := GB(1953.125); got != "1,953.13 GB" {
		t.Errorf("GB = %q", got)
	}
}

func TestRatios(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"undefined LTV:CAC", LTVCAC(types.Undefined()), "N/A"},
		{"defined LTV:CAC", LTVCAC(types.Defined(4.9)), "4.9:1"},
		{"infinite LTV:CAC", LTVCAC(types.Defined(math.Inf(1))), "∞:1"},
		{"undefined payback", Payback(types.Undefined()), "N/A"},
		{"defined payback", Payback(types.Defined(2.04)), "2.0 mo"},
		{"infinite lifetime", Months(types.Infinite()), "∞"},
		{"lifetime", Months(20), "20.0 mo"},
		{"infinite CAC", UnboundedMoney(types.Infinite()), "∞"},
		{"zero price/cost", Ratio(0), "N/A"},
		{"price/cost", Ratio(40.833), "40.83x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestMonthsToBreakEven(t *testing.T) {
	tests := []struct {
		name string
		m    types.Metrics
		want string
	}{
		{"profitable", types.Metrics{Profitable: true}, "Already profitable"},
		{"reachable", types.Metrics{MonthsToBreakEven: 8.04}, "8.0"},
		{"no growth", types.Metrics{}, "N/A"},
		{"beyond horizon", types.Metrics{MonthsToBreakEven: 1500}, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsToBreakEven(tt.m); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
