package compound

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Rate is an annual interest rate stored as a fraction (10% is 0.10).
// It may be negative to model losses.
type Rate struct {
	value decimal.Decimal
}

// Percent creates a Rate from a percentage, Percent(10) is 10%.
func Percent[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](p T) Rate {
	return Rate{value: newDecimal(p).Div(hundred)}
}

// Fraction creates a Rate from a fraction, Fraction(0.1) is 10%.
func Fraction[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](f T) Rate {
	return Rate{value: newDecimal(f)}
}

// ParsePercent parses a percentage string like "10" or "-2.5". Rates beyond
// ±MaxRatePercent are rejected.
func ParsePercent(s string) (Rate, error) {
	d, err := parseBounded(s, maxRatePercent)
	if err != nil {
		return Rate{}, err
	}
	return Rate{value: d.Div(hundred)}, nil
}

func (r Rate) Fraction() decimal.Decimal { return r.value }
func (r Rate) Percent() decimal.Decimal  { return r.value.Mul(hundred) }
func (r Rate) Equal(q Rate) bool         { return r.value.Equal(q.value) }
func (r Rate) IsNegative() bool          { return r.value.IsNegative() }

// String returns the percentage with two decimals, or with as many as needed
// to show the applied rate exactly ("3.333%").
func (r Rate) String() string {
	p := r.Percent()
	if p.Equal(p.Round(2)) {
		return p.StringFixed(2) + "%"
	}
	return p.String() + "%"
}
