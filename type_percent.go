package fairvalue

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage value, e.g. Percent(3.5) for 3.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// Rate returns the percentage as a dimensionless factor (3.5% -> 0.035).
func (p Percent) Rate() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Div(decimal.NewFromInt(100))
}

// Ratio is a dimensionless valuation multiple (P/E, P/BV, D/E).
type Ratio float64

func (r Ratio) String() string { return fmt.Sprintf("%.2f", float64(r)) }
