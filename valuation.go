package fairvalue

import "github.com/shopspring/decimal"

// Reasons for an invalid valuation. These are normal, representable result
// states, not errors: a stock without dividend simply has no DDM value.
const (
	// ReasonNoDividend: the model needs a trailing dividend to project.
	ReasonNoDividend = "No Div"
	// ReasonDegenerate: required return ≤ growth, the perpetuity diverges.
	ReasonDegenerate = "r ≤ g"
)

// Margin-of-safety multipliers: a buy target at 30/40/50% below fair value.
var (
	mos30Factor = decimal.NewFromFloat(0.7)
	mos40Factor = decimal.NewFromFloat(0.6)
	mos50Factor = decimal.NewFromFloat(0.5)
)

// ValuationResult is the display-ready outcome of valuating one equity.
// It is recomputed on demand and never stored: a result is only meaningful
// against the equity state it was derived from.
type ValuationResult struct {
	// D1 is next year's projected dividend, D0×(1+g). It is computed as soon
	// as a dividend exists, even when the model itself is invalid.
	D1 Money
	// ForecastYield is D1 over the current price, informational only.
	ForecastYield Percent

	// FairPrice is the Gordon Growth steady-state value D1/(r−g).
	FairPrice Money
	// Buy targets at a 30/40/50% discount to FairPrice.
	MOS30, MOS40, MOS50 Money
	// Affordable position size at each tier, in whole board lots.
	Shares30, Shares40, Shares50 Shares

	// Valid reports whether the model preconditions held. When false, Reason
	// carries the short label ("No Div" or "r ≤ g") and FairPrice, the MOS
	// tiers and the share counts are all zero.
	Valid  bool
	Reason string
}

// Valuate applies the Gordon Growth model (dividend discount) to one equity
// given the capital allocated to its position. It is total and side-effect
// free: every input combination produces a fully determined result.
//
//	P = D1 / (r − g)   with D1 = D0 × (1 + g)
func Valuate(eq Equity, allocation Money) ValuationResult {
	g := eq.Growth.Rate()
	r := eq.RequiredReturn.Rate()

	// Without a trailing dividend there is nothing to project.
	if !eq.Dividend.IsPositive() {
		return ValuationResult{Reason: ReasonNoDividend}
	}

	// D1 and its forecast yield are computed before the model validity
	// check, so the projection stays displayable even when r ≤ g.
	d1 := eq.Dividend.Scale(decimal.NewFromInt(1).Add(g))
	result := ValuationResult{D1: d1, ForecastYield: yieldFrom(d1, eq.Price)}

	if r.LessThanOrEqual(g) {
		// The perpetuity sum diverges or turns negative: no steady-state
		// fair value exists.
		result.Reason = ReasonDegenerate
		return result
	}

	fair := d1.Div(r.Sub(g))
	result.FairPrice = fair
	result.MOS30 = fair.Scale(mos30Factor)
	result.MOS40 = fair.Scale(mos40Factor)
	result.MOS50 = fair.Scale(mos50Factor)
	result.Shares30 = LotShares(allocation, result.MOS30)
	result.Shares40 = LotShares(allocation, result.MOS40)
	result.Shares50 = LotShares(allocation, result.MOS50)
	result.Valid = true
	return result
}
