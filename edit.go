package fairvalue

// This file defines the edit operations on a single equity.
//
// The price/dividend/yield triple is never edited field by field: exactly one
// of the three drives an edit, and the other two are derived from it. Each
// edit variant below carries that rule, so an equity can never hold a
// dividend and a yield that disagree.

// Edit is one field change applied to an equity through the portfolio
// aggregate.
type Edit interface {
	// Field returns the name of the driving field, for logs and messages.
	Field() string
	apply(eq *Equity)
}

// SetSymbol replaces the ticker. The value is normalized (trimmed,
// uppercased) on application.
type SetSymbol struct{ Symbol string }

func (e SetSymbol) Field() string    { return "symbol" }
func (e SetSymbol) apply(eq *Equity) { eq.Symbol = NormalizeSymbol(e.Symbol) }

// SetName replaces the company name.
type SetName struct{ Name string }

func (e SetName) Field() string    { return "name" }
func (e SetName) apply(eq *Equity) { eq.Name = e.Name }

// SetPrice drives the triple through the market price: the trailing yield is
// recomputed from the held dividend.
type SetPrice struct{ Price Money }

func (e SetPrice) Field() string { return "price" }
func (e SetPrice) apply(eq *Equity) {
	eq.Price = e.Price
	eq.Yield = yieldFrom(eq.Dividend, eq.Price)
}

// SetDividend drives the triple through the dividend per share: the trailing
// yield is recomputed from the current price.
type SetDividend struct{ Dividend Money }

func (e SetDividend) Field() string { return "dividend" }
func (e SetDividend) apply(eq *Equity) {
	eq.Dividend = e.Dividend
	eq.Yield = yieldFrom(eq.Dividend, eq.Price)
}

// SetYield drives the triple through the trailing yield: the dividend per
// share is recomputed from the current price.
type SetYield struct{ Yield Percent }

func (e SetYield) Field() string { return "yield" }
func (e SetYield) apply(eq *Equity) {
	eq.Yield = e.Yield
	eq.Dividend = dividendFrom(eq.Yield, eq.Price)
}

// SetGrowth replaces the expected perpetual growth rate. Negative values are
// legal and simply lower the projected dividend.
type SetGrowth struct{ Growth Percent }

func (e SetGrowth) Field() string    { return "growth" }
func (e SetGrowth) apply(eq *Equity) { eq.Growth = e.Growth }

// SetRequiredReturn replaces the required rate of return.
type SetRequiredReturn struct{ RequiredReturn Percent }

func (e SetRequiredReturn) Field() string    { return "requiredReturn" }
func (e SetRequiredReturn) apply(eq *Equity) { eq.RequiredReturn = e.RequiredReturn }

// SetPE replaces the price/earnings multiple.
type SetPE struct{ PE Ratio }

func (e SetPE) Field() string    { return "pe" }
func (e SetPE) apply(eq *Equity) { eq.PE = e.PE }

// SetPBV replaces the price/book multiple.
type SetPBV struct{ PBV Ratio }

func (e SetPBV) Field() string    { return "pbv" }
func (e SetPBV) apply(eq *Equity) { eq.PBV = e.PBV }

// SetDE replaces the debt/equity ratio.
type SetDE struct{ DE Ratio }

func (e SetDE) Field() string    { return "de" }
func (e SetDE) apply(eq *Equity) { eq.DE = e.DE }

// SetROE replaces the return on equity.
type SetROE struct{ ROE Percent }

func (e SetROE) Field() string    { return "roe" }
func (e SetROE) apply(eq *Equity) { eq.ROE = e.ROE }

// SetEPS replaces the earnings per share.
type SetEPS struct{ EPS Money }

func (e SetEPS) Field() string    { return "eps" }
func (e SetEPS) apply(eq *Equity) { eq.EPS = e.EPS }
