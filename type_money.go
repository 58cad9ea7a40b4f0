package compound

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// cents is the number of decimal places every amount is quantized to.
const cents = 2

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a numeric value in major units.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a decimal string (e.g. "1000.50") into Money. Amounts
// beyond ±MaxAmount are rejected.
func ParseMoney(s, currency string) (Money, error) {
	d, err := parseBounded(s, maxAmount)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d, cur: currency}, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, formatted
// according to its currency (e.g. "$1,662.00").
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction)).BigInt()
	if minor.IsInt64() {
		return cur.Formatter().Format(minor.Int64())
	}
	return formatMinor(cur.Formatter(), minor)
}

// formatMinor formats an amount of minor units too large for money.Formatter,
// with the same layout.
func formatMinor(f *money.Formatter, minor *big.Int) string {
	sa := new(big.Int).Abs(minor).String()
	if len(sa) <= f.Fraction {
		sa = strings.Repeat("0", f.Fraction-len(sa)+1) + sa
	}
	if f.Thousand != "" {
		for i := len(sa) - f.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + f.Thousand + sa[i:]
		}
	}
	if f.Fraction > 0 {
		sa = sa[:len(sa)-f.Fraction] + f.Decimal + sa[len(sa)-f.Fraction:]
	}
	sa = strings.Replace(f.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", f.Grapheme, 1)
	if minor.Sign() < 0 {
		sa = "-" + sa
	}
	return sa
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }

// Times multiplies the amount by an integer count, e.g. a number of occurrences.
func (m Money) Times(n int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(n))), cur: m.cur}
}

// Interest returns the amount earned by m at rate r, rounded to the cent.
func (m Money) Interest(r Rate) Money {
	return Money{value: m.value.Mul(r.value).Round(cents), cur: m.cur}
}

// Round returns m rounded to the cent, half away from zero.
func (m Money) Round() Money { return Money{value: m.value.Round(cents), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// Deprecated: AsFloat should no longer be used, the purpose is to keep the calculation exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// amount returns the JSON number for m, always with two decimals.
func (m Money) amount() json.Number {
	return json.Number(m.value.StringFixed(cents))
}

// MarshalJSON encodes money as an object with its currency and amount.
// Inside a Result or a Series the currency is written once and amounts are
// plain numbers instead.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.amount())
	return w.MarshalJSON()
}

// ValidCurrency reports whether code is a currency known to the formatter.
func ValidCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}
