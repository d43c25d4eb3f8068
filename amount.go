package fbarcalc

import (
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value in a given currency.
type Amount struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// A builds an Amount from any numeric value.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Amount {
	return Amount{value: newDecimal(value), cur: currency}
}

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
	}
	return decimal.Decimal{}
}

// ParseAmount parses a decimal string (dot as separator, no currency symbol)
// into an Amount of the given currency.
func ParseAmount(s, currency string) (Amount, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: v, cur: currency}, nil
}

// Truncate floors the amount at the hundredths place, toward negative
// infinity: 12.345 becomes 12.34 and -0.005 becomes -0.01. This is the
// truncation applied to every value entering the balance accumulator, and it
// is not rounding.
func (a Amount) Truncate() Amount {
	return Amount{value: a.value.Shift(2).Floor().Shift(-2), cur: a.cur}
}

func (a Amount) Currency() string            { return a.cur }
func (a Amount) Equal(b Amount) bool         { return a.value.Equal(b.value) && a.cur == b.cur }
func (a Amount) IsZero() bool                { return a.value.IsZero() }
func (a Amount) IsNegative() bool            { return a.value.IsNegative() }
func (a Amount) GreaterThan(b Amount) bool   { return a.value.GreaterThan(b.value) }
func (a Amount) LessThan(b Amount) bool      { return a.value.LessThan(b.value) }
func (a Amount) Add(b Amount) Amount         { return Amount{value: a.value.Add(b.value), cur: cur(a, b)} }
func (a Amount) Mul(r decimal.Decimal) Amount {
	return Amount{value: a.value.Mul(r), cur: a.cur}
}

// makes the "" currency totally weak.
func cur(a, b Amount) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// String renders the amount as symbol followed by the value with exactly two
// fractional digits, for every currency (including zero-fraction ones like
// JPY).
func (a Amount) String() string {
	symbol := ""
	if c, err := FindCurrency(a.cur); err == nil {
		symbol = c.Symbol()
	}
	return symbol + a.value.StringFixed(2)
}
