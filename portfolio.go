package fairvalue

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound reports an operation aimed at an equity id the portfolio does
// not hold.
var ErrNotFound = errors.New("equity not found")

// ErrRowBusy reports an edit attempted while the row is being refreshed.
// While a fetch is in flight the row is read-only.
var ErrRowBusy = errors.New("equity is being refreshed")

// RowStatus is the transient per-row operation state. It is never persisted:
// a freshly loaded portfolio always starts with idle rows.
type RowStatus struct {
	Loading bool
	Err     string
}

// Portfolio is the aggregate owning the ordered collection of equities and
// the capital settings. All mutations go through its methods; there is no
// package-level state.
//
// Rows keep their insertion order, stable across edits. Concurrent refreshes
// of different rows are safe: each one mutates only its own row under the
// aggregate lock, and the shared allocation is read-only during a refresh.
type Portfolio struct {
	mu       sync.Mutex
	settings Settings
	equities []*Equity
	index    map[string]*Equity // index equities by id
	status   map[string]*RowStatus

	// dirty is set by every mutation and cleared only by a completed save.
	dirty bool

	// needsCredential is raised when a fetch fails because the provider
	// credential is revoked or invalid. It gates further fetches until the
	// user re-authorizes.
	needsCredential bool
}

// New creates an empty portfolio with the default capital plan.
func New() *Portfolio {
	return &Portfolio{
		settings: DefaultSettings(),
		index:    make(map[string]*Equity),
		status:   make(map[string]*RowStatus),
	}
}

// Settings returns the current capital plan.
func (p *Portfolio) Settings() Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings
}

// SetSettings replaces the capital plan, applying the input policy
// (companyCount clamped to ≥1, negative capital floored to 0).
func (p *Portfolio) SetSettings(s Settings) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settings = s.normalize()
	p.dirty = true
}

// Allocation returns the capital earmarked for one position.
func (p *Portfolio) Allocation() Money {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings.Allocation()
}

// Add appends a blank equity with a fresh id and default assumptions, and
// returns a copy of it.
func (p *Portfolio) Add() Equity {
	p.mu.Lock()
	defer p.mu.Unlock()
	eq := NewEquity()
	p.equities = append(p.equities, eq)
	p.index[eq.ID] = eq
	p.status[eq.ID] = &RowStatus{}
	p.dirty = true
	return *eq
}

// Update applies the edits to the matching equity, in order. A previous
// fetch error on the row is cleared: the user is correcting the row.
// Returns ErrNotFound for an unknown id and ErrRowBusy while the row is
// being refreshed.
func (p *Portfolio) Update(id string, edits ...Edit) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	eq, ok := p.index[id]
	if !ok {
		return fmt.Errorf("updating %q: %w", id, ErrNotFound)
	}
	if p.status[id].Loading {
		return fmt.Errorf("updating %q: %w", id, ErrRowBusy)
	}
	for _, e := range edits {
		e.apply(eq)
	}
	p.status[id].Err = ""
	p.dirty = true
	return nil
}

// Remove deletes the matching equity. Confirmation of this destructive
// action is the caller's responsibility.
func (p *Portfolio) Remove(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.index[id]; !ok {
		return fmt.Errorf("removing %q: %w", id, ErrNotFound)
	}
	for i, eq := range p.equities {
		if eq.ID == id {
			p.equities = append(p.equities[:i], p.equities[i+1:]...)
			break
		}
	}
	delete(p.index, id)
	delete(p.status, id)
	p.dirty = true
	return nil
}

// Get returns a copy of the equity with the given id.
func (p *Portfolio) Get(id string) (Equity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	eq, ok := p.index[id]
	if !ok {
		return Equity{}, false
	}
	return *eq, true
}

// Find returns a copy of the first equity with the given (normalized)
// symbol.
func (p *Portfolio) Find(symbol string) (Equity, bool) {
	symbol = NormalizeSymbol(symbol)
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, eq := range p.equities {
		if eq.Symbol == symbol {
			return *eq, true
		}
	}
	return Equity{}, false
}

// Equities returns copies of all equities, in insertion order.
func (p *Portfolio) Equities() []Equity {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Equity, 0, len(p.equities))
	for _, eq := range p.equities {
		out = append(out, *eq)
	}
	return out
}

// Len returns the number of tracked equities.
func (p *Portfolio) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.equities)
}

// Status returns the transient state of a row. Unknown ids report an idle
// row.
func (p *Portfolio) Status(id string) RowStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	if st, ok := p.status[id]; ok {
		return *st
	}
	return RowStatus{}
}

// Dirty reports whether the portfolio holds unsaved changes.
func (p *Portfolio) Dirty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dirty
}

// NeedsCredential reports whether the last fetches failed on a revoked or
// invalid provider credential.
func (p *Portfolio) NeedsCredential() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.needsCredential
}

// ClearCredential resets the credential state, after the user re-authorized
// the provider.
func (p *Portfolio) ClearCredential() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.needsCredential = false
}

// Row pairs an equity with its transient status and its freshly computed
// valuation. Results are recomputed on every call: nothing is memoized
// across mutations.
type Row struct {
	Equity    Equity
	Status    RowStatus
	Valuation ValuationResult
}

// Rows valuates every equity against the current per-position allocation
// and returns the display-ready rows, in insertion order.
func (p *Portfolio) Rows() []Row {
	p.mu.Lock()
	defer p.mu.Unlock()
	allocation := p.settings.Allocation()
	rows := make([]Row, 0, len(p.equities))
	for _, eq := range p.equities {
		rows = append(rows, Row{
			Equity:    *eq,
			Status:    *p.status[eq.ID],
			Valuation: Valuate(*eq, allocation),
		})
	}
	return rows
}
