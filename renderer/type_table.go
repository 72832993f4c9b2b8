package renderer

import (
	"github.com/etnz/fairvalue"
)

// Table is the display-ready view of the whole portfolio. All cells are
// preformatted strings: money and percentages fixed to two decimals, share
// counts grouped.
type Table struct {
	TotalCapital    string
	CompanyCount    int
	Allocation      string
	Unsaved         bool
	NeedsCredential bool
	Stocks          []StockRow
}

// StockRow is one line of the valuation table.
type StockRow struct {
	Symbol string
	Name   string

	Price    string
	PE       string
	PBV      string
	DE       string
	ROE      string
	EPS      string
	Dividend string
	Yield    string
	Growth   string
	Required string

	D1            string
	ForecastYield string
	FairPrice     string
	MOS30         string
	MOS40         string
	MOS50         string
	Shares30      string
	Shares40      string
	Shares50      string

	// Note distinguishes the row states: a fetch in flight, a row-level
	// fetch error, or an invalid model (rendered distinctly from errors).
	Note string

	ReferenceYear string
}

// Detail is the provenance view of one stock.
type Detail struct {
	Symbol        string
	Name          string
	ReferenceYear string
	Sources       []fairvalue.Source
}

// NewTable valuates every row against the current allocation and formats
// the result for display.
func NewTable(p *fairvalue.Portfolio) *Table {
	settings := p.Settings()
	tbl := &Table{
		TotalCapital:    settings.TotalCapital.Fixed(),
		CompanyCount:    settings.CompanyCount,
		Allocation:      settings.Allocation().Fixed(),
		Unsaved:         p.Dirty(),
		NeedsCredential: p.NeedsCredential(),
	}
	for _, row := range p.Rows() {
		tbl.Stocks = append(tbl.Stocks, newStockRow(row))
	}
	return tbl
}

func newStockRow(row fairvalue.Row) StockRow {
	eq, v := row.Equity, row.Valuation
	r := StockRow{
		Symbol:        eq.Symbol,
		Name:          eq.Name,
		Price:         eq.Price.Fixed(),
		PE:            eq.PE.String(),
		PBV:           eq.PBV.String(),
		DE:            eq.DE.String(),
		ROE:           eq.ROE.String(),
		EPS:           eq.EPS.Fixed(),
		Dividend:      eq.Dividend.Fixed(),
		Yield:         eq.Yield.String(),
		Growth:        eq.Growth.String(),
		Required:      eq.RequiredReturn.String(),
		ReferenceYear: eq.ReferenceYear,
	}
	if r.Symbol == "" {
		r.Symbol = "—"
	}

	switch {
	case row.Status.Loading:
		r.Note = "fetching…"
	case row.Status.Err != "":
		r.Note = "⚠ " + row.Status.Err
	case !v.Valid:
		r.Note = v.Reason
	}

	if v.Valid {
		r.FairPrice = v.FairPrice.Fixed()
		r.MOS30 = v.MOS30.Fixed()
		r.MOS40 = v.MOS40.Fixed()
		r.MOS50 = v.MOS50.Fixed()
		r.Shares30 = v.Shares30.String()
		r.Shares40 = v.Shares40.String()
		r.Shares50 = v.Shares50.String()
	} else {
		// an invalid model shows its reason where the fair price would be
		r.FairPrice = v.Reason
		r.MOS30, r.MOS40, r.MOS50 = "-", "-", "-"
		r.Shares30, r.Shares40, r.Shares50 = "-", "-", "-"
	}
	// the projection survives a degenerate model
	if v.D1.IsPositive() {
		r.D1 = v.D1.Fixed()
		r.ForecastYield = v.ForecastYield.String()
	} else {
		r.D1, r.ForecastYield = "-", "-"
	}
	return r
}

// NewDetail builds the provenance view of one stock.
func NewDetail(eq fairvalue.Equity) *Detail {
	return &Detail{
		Symbol:        eq.Symbol,
		Name:          eq.Name,
		ReferenceYear: eq.ReferenceYear,
		Sources:       eq.Sources,
	}
}
