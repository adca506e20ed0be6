package inventory

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency stock costs are expressed in when nothing else is configured.
const DefaultCurrency = money.ZAR

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a plain decimal amount like "1250.50" in the given currency.
// A leading currency grapheme (like "R" for ZAR) is tolerated.
func ParseMoney(s, currency string) (Money, error) {
	s = strings.TrimSpace(s)
	if c := money.GetCurrency(currency); c != nil {
		s = strings.TrimSpace(strings.TrimPrefix(s, c.Grapheme))
	}
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d, cur: currency}, nil
}

// Symbol returns the grapheme of a currency, like "R" for ZAR, or its code when unknown.
func Symbol(currency string) string {
	if c := money.GetCurrency(currency); c != nil {
		return c.Grapheme
	}
	return currency
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, e.g. R1,250.50.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Amount returns the canonical decimal text of the amount, without currency.
// It keeps at least the currency fraction digits and never loses precision.
func (m Money) Amount() string {
	fraction := int32(m.currency().Fraction)
	if -m.value.Exponent() > fraction {
		return m.value.String()
	}
	return m.value.StringFixed(fraction)
}

// Simple wrapper around decimal.Decimal

func (m Money) Currency() string            { return m.cur }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsPositive() bool            { return m.value.IsPositive() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool       { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool    { return m.value.GreaterThan(n.value) }
func (m Money) Mul(quantity int) Money      { return Money{value: m.value.Mul(newDecimal(quantity)), cur: m.cur} }
func (m Money) Decimal() decimal.Decimal    { return m.value }
func (m Money) Cmp(n Money) int             { return m.value.Cmp(n.value) }
func (m Money) InCurrency(cur string) Money { return Money{value: m.value, cur: cur} }
func (m Money) Add(n Money) Money           { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money           { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

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

// MarshalJSON writes the amount as a JSON number, rounded to the currency fraction.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.StringFixed(int32(m.currency().Fraction))), nil
}
