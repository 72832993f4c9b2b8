package fairvalue

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file contains code to persist the portfolio as a single
// human-readable JSON snapshot. The whole (settings, stocks) pair is the
// unit of persistence: it is written in one piece and read in one piece,
// there is no partial save.
//
// Only durable fields are encoded. The per-row transient status (loading
// flag, fetch error) is deliberately left out: a freshly loaded portfolio
// always starts idle.

// snapshot is the JSON shape of the persisted portfolio.
type snapshot struct {
	Settings Settings  `json:"settings"`
	Stocks   []*Equity `json:"stocks"`
}

// Encode writes the full portfolio snapshot to w.
func Encode(w io.Writer, p *Portfolio) error {
	p.mu.Lock()
	snap := snapshot{Settings: p.settings, Stocks: p.equities}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(snap)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("could not encode portfolio: %w", err)
	}
	return nil
}

// Decode reads a full portfolio snapshot from r. The decoded portfolio is
// clean (no unsaved changes) and all rows are idle.
func Decode(r io.Reader) (*Portfolio, error) {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("could not decode portfolio: %w", err)
	}

	p := New()
	p.settings = snap.Settings.normalize()
	for _, eq := range snap.Stocks {
		if eq == nil || eq.ID == "" {
			// skip rows the file cannot identify
			continue
		}
		if _, dup := p.index[eq.ID]; dup {
			return nil, fmt.Errorf("could not decode portfolio: duplicate equity id %q", eq.ID)
		}
		eq.Symbol = NormalizeSymbol(eq.Symbol)
		p.equities = append(p.equities, eq)
		p.index[eq.ID] = eq
		p.status[eq.ID] = &RowStatus{}
	}
	return p, nil
}

// markClean records that the in-memory state matches the saved snapshot.
func (p *Portfolio) markClean() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dirty = false
}
