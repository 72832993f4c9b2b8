package fairvalue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Quote is the shape of the fundamentals returned by a data provider for one
// symbol. Missing optional fields are simply zero.
type Quote struct {
	Name          string
	Price         Money
	PE            Ratio
	PBV           Ratio
	DE            Ratio
	ROE           Percent
	EPS           Money
	Dividend      Money
	Yield         Percent
	Sources       []Source
	ReferenceYear string
}

// Quoter fetches the fundamentals of one symbol. Implementations live in
// provider packages (e.g. gemini); the portfolio treats them as opaque.
type Quoter interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}

// ErrCredential marks a fetch failure caused by a revoked or invalid
// provider credential. It is distinguished from generic failures because it
// gates the whole portfolio, not just one row.
var ErrCredential = errors.New("provider credential rejected")

// ErrSymbolRequired reports a refresh attempted on a row without a ticker.
var ErrSymbolRequired = errors.New("Symbol required")

// credentialPhrases are the known fragments of credential failures from
// providers that only expose a message. Matching on phrases is crude but it
// is all some services give us.
var credentialPhrases = []string{
	"API key not found",
	"API key not valid",
	"API Key",
	"entity was not found",
	"PERMISSION_DENIED",
}

// IsCredential reports whether err is a credential-class fetch failure.
func IsCredential(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrCredential) {
		return true
	}
	msg := err.Error()
	for _, phrase := range credentialPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

// Refresh fetches fresh fundamentals for one row and overwrites them
// atomically. Failures stay row-scoped: the error message is stored on the
// row and also returned. A credential-class failure additionally raises the
// portfolio-wide needs-credential state.
//
// A second refresh on a row already being refreshed is ignored.
func (p *Portfolio) Refresh(ctx context.Context, id string, quoter Quoter) error {
	symbol, err := p.beginRefresh(id)
	if err != nil || symbol == "" {
		return err
	}

	quote, err := quoter.Quote(ctx, symbol)
	p.endRefresh(id, quote, err)
	return err
}

// beginRefresh validates and marks the row busy. It returns the normalized
// symbol to fetch, or "" when the refresh must not proceed (unknown row,
// already busy).
func (p *Portfolio) beginRefresh(id string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	eq, ok := p.index[id]
	if !ok {
		return "", fmt.Errorf("refreshing %q: %w", id, ErrNotFound)
	}
	st := p.status[id]
	if st.Loading {
		// one refresh at a time per row
		return "", nil
	}
	symbol := NormalizeSymbol(eq.Symbol)
	if symbol == "" {
		st.Err = ErrSymbolRequired.Error()
		return "", ErrSymbolRequired
	}
	eq.Symbol = symbol
	st.Loading = true
	st.Err = ""
	return symbol, nil
}

// endRefresh stores the outcome of a fetch on the row.
func (p *Portfolio) endRefresh(id string, quote Quote, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	eq, ok := p.index[id]
	if !ok {
		// row was removed while the fetch was in flight, drop the result
		return
	}
	st := p.status[id]
	st.Loading = false
	if err != nil {
		st.Err = err.Error()
		if IsCredential(err) {
			p.needsCredential = true
		}
		return
	}

	// Overwrite all fetched fields in one step.
	eq.Name = quote.Name
	eq.Price = quote.Price
	eq.PE = quote.PE
	eq.PBV = quote.PBV
	eq.DE = quote.DE
	eq.ROE = quote.ROE
	eq.EPS = quote.EPS
	eq.Dividend = quote.Dividend
	eq.Yield = quote.Yield
	if eq.Yield == 0 {
		// tolerate providers that omit the derived yield
		eq.Yield = yieldFrom(eq.Dividend, eq.Price)
	}
	eq.Sources = quote.Sources
	eq.ReferenceYear = quote.ReferenceYear
	p.dirty = true
}

// RowResult is the outcome of one row in a bulk refresh.
type RowResult struct {
	ID     string
	Symbol string
	Err    error
}

// RefreshAll refreshes every row holding a non-empty symbol and returns the
// per-row outcomes. Rows are fetched concurrently, one task per row; each
// task mutates only its own row, and one row's failure never cancels the
// others. There is no atomicity across rows: a partial failure leaves some
// rows updated and others carrying their error.
func (p *Portfolio) RefreshAll(ctx context.Context, quoter Quoter) []RowResult {
	var targets []RowResult
	for _, eq := range p.Equities() {
		if strings.TrimSpace(eq.Symbol) == "" {
			continue
		}
		targets = append(targets, RowResult{ID: eq.ID, Symbol: NormalizeSymbol(eq.Symbol)})
	}

	var wg sync.WaitGroup
	for i := range targets {
		wg.Add(1)
		go func(r *RowResult) {
			defer wg.Done()
			r.Err = p.Refresh(ctx, r.ID, quoter)
		}(&targets[i])
	}
	wg.Wait()
	return targets
}
