package compound

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Bounds of the amounts and rates parsed from text.
const (
	MaxAmount      = 1_000_000_000_000 // in major units
	MaxRatePercent = 1000
	maxScale       = 20 // decimal places
)

var (
	maxAmount      = decimal.NewFromInt(MaxAmount)
	maxRatePercent = decimal.NewFromInt(MaxRatePercent)
)

// parseBounded parses s as a decimal whose absolute value is at most limit,
// with at most maxScale decimal places.
//
// The magnitude is checked on the coefficient and the exponent before any
// comparison: comparing or rounding a value like 1e99999999 expands it.
func parseBounded(s string, limit decimal.Decimal) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.Exponent() < -maxScale {
		return decimal.Decimal{}, fmt.Errorf("more than %d decimal places", maxScale)
	}
	if d.NumDigits()+int(d.Exponent()) > limit.NumDigits()+int(limit.Exponent()) || d.Abs().GreaterThan(limit) {
		return decimal.Decimal{}, fmt.Errorf("out of range, must be within ±%s", limit)
	}
	return d, nil
}
