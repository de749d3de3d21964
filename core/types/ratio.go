// Package types - Optional ratio type
package types

import (
	"encoding/json"
	"math"
)

// Ratio is a ratio that may be undefined (e.g. LTV:CAC when CAC is zero or
// infinite). Callers must check IsDefined before using the value.
type Ratio struct {
	value   float64
	defined bool
}

// Defined wraps a value. NaN becomes Undefined; an infinite ratio (for
// example LTV:CAC with zero churn) stays defined.
func Defined(v float64) Ratio {
	if math.IsNaN(v) {
		return Undefined()
	}
	return Ratio{value: v, defined: true}
}

// Undefined returns the undefined ratio marker
func Undefined() Ratio {
	return Ratio{}
}

// IsDefined reports whether the ratio carries a value
func (r Ratio) IsDefined() bool {
	return r.defined
}

// Value returns the ratio and whether it is defined
func (r Ratio) Value() (float64, bool) {
	return r.value, r.defined
}

// Or returns the value, or fallback when undefined
func (r Ratio) Or(fallback float64) float64 {
	if !r.defined {
		return fallback
	}
	return r.value
}

// MarshalJSON encodes undefined ratios as null
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.defined {
		return []byte("null"), nil
	}
	return Unbounded(r.value).MarshalJSON()
}

// UnmarshalJSON decodes null as undefined
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Undefined()
		return nil
	}
	var v Unbounded
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Defined(float64(v))
	return nil
}

// Unbounded is a figure that may legitimately be +Inf, such as customer
// lifetime with zero churn or CAC with spend but no new customers.
type Unbounded float64

// Infinite returns +Inf as an Unbounded
func Infinite() Unbounded {
	return Unbounded(math.Inf(1))
}

// IsInf reports whether the figure is infinite
func (u Unbounded) IsInf() bool {
	return math.IsInf(float64(u), 0)
}

// Float returns the raw float64
func (u Unbounded) Float() float64 {
	return float64(u)
}

// MarshalJSON encodes infinities as the string "Infinity"
func (u Unbounded) MarshalJSON() ([]byte, error) {
	f := float64(u)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	case math.IsNaN(f):
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON accepts numbers and the infinity strings
func (u *Unbounded) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"Infinity"`:
		*u = Unbounded(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*u = Unbounded(math.Inf(-1))
		return nil
	case "null":
		*u = Unbounded(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*u = Unbounded(f)
	return nil
}
