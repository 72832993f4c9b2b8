package fairvalue

import (
	"strings"

	"github.com/google/uuid"
)

// Default valuation assumptions applied to every new equity. They are the
// usual starting point for a SET dividend stock and are meant to be edited.
const (
	DefaultGrowth         = Percent(3.0)
	DefaultRequiredReturn = Percent(10.0)
)

// Source is a citation returned by the data provider for fetched
// fundamentals.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Equity is one tracked stock position. It holds only the durable fields:
// the transient per-row state (loading flag, last fetch error) lives in the
// Portfolio, so that it is never persisted.
type Equity struct {
	// ID is an opaque token assigned at creation, stable for the whole life
	// of the row.
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name,omitempty"`

	// Fundamentals, each independently optional until fetched or entered.
	Price Money   `json:"price"`
	PE    Ratio   `json:"pe"`
	PBV   Ratio   `json:"pbv"`
	DE    Ratio   `json:"de"`
	ROE   Percent `json:"roe"`
	EPS   Money   `json:"eps"`

	// Dividend inputs. The pair is kept mutually consistent by the edit
	// operations: only one of dividend/yield/price drives an edit, the
	// others are recomputed.
	Dividend Money   `json:"dividendBaht"`
	Yield    Percent `json:"yieldPercent"`

	// Valuation assumptions.
	Growth         Percent `json:"growth"`
	RequiredReturn Percent `json:"requiredReturn"`

	// Provenance of the last fetch.
	Sources       []Source `json:"sources,omitempty"`
	ReferenceYear string   `json:"referenceYear,omitempty"`
}

// NewEquity creates a blank equity with a fresh unique id and the default
// valuation assumptions.
func NewEquity() *Equity {
	return &Equity{
		ID:             uuid.NewString(),
		Growth:         DefaultGrowth,
		RequiredReturn: DefaultRequiredReturn,
	}
}

// NormalizeSymbol trims and uppercases a user-entered ticker.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// yieldFrom recomputes the trailing yield from a dividend and a price.
// A zero price yields zero, never a division error.
func yieldFrom(dividend, price Money) Percent {
	if !price.IsPositive() || !dividend.IsPositive() {
		return 0
	}
	return Percent(dividend.DivMoney(price).InexactFloat64() * 100)
}

// dividendFrom recomputes the dividend per share from a yield and a price.
func dividendFrom(yield Percent, price Money) Money {
	if !price.IsPositive() {
		return M(0)
	}
	return price.Scale(yield.Rate())
}
