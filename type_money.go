package fairvalue

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The whole portfolio works in a single currency. Multi-currency is out of
// scope: prices, dividends and capital all share this unit.
const currency = "THB"

// Money represents a monetary value in the portfolio currency.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

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

// String returns the fully formatted value, with the currency symbol and
// thousands grouping (e.g. "฿1,234.50").
func (m Money) String() string {
	cur := *money.New(0, currency).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Fixed returns the bare value fixed to two decimal places, without symbol
// nor grouping. This is the format used in table cells.
func (m Money) Fixed() string { return m.value.StringFixed(2) }

func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money            { return Money{value: m.value.Sub(n.value)} }

// Scale multiplies the value by a dimensionless factor (e.g. a
// margin-of-safety multiplier).
func (m Money) Scale(f decimal.Decimal) Money { return Money{value: m.value.Mul(f)} }

// Div divides the value by a dimensionless factor. The factor must not be
// zero.
func (m Money) Div(f decimal.Decimal) Money { return Money{value: m.value.Div(f)} }

// DivMoney divides two monetary values, yielding a dimensionless ratio.
func (m Money) DivMoney(n Money) decimal.Decimal { return m.value.Div(n.value) }

// DivCount splits the value in count equal parts. count must be positive.
func (m Money) DivCount(count int) Money {
	return Money{value: m.value.Div(decimal.NewFromInt(int64(count)))}
}

// AsFloat is for display and tolerance-based comparisons only; calculations
// stay on the exact decimal value.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

func (m Money) MarshalJSON() ([]byte, error)  { return m.value.MarshalJSON() }
func (m *Money) UnmarshalJSON(b []byte) error { return m.value.UnmarshalJSON(b) }
