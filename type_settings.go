package fairvalue

import (
	"log"

	"github.com/shopspring/decimal"
)

// Settings holds the portfolio-level capital plan.
type Settings struct {
	// TotalCapital is the investable capital spread over the positions.
	TotalCapital Money `json:"totalCapital"`
	// CompanyCount is the target number of positions. Always at least 1.
	CompanyCount int `json:"companyCount"`
}

// DefaultSettings returns the initial capital plan for a new portfolio.
func DefaultSettings() Settings {
	return Settings{TotalCapital: M(1_000_000), CompanyCount: 5}
}

// normalize applies the input policy: the position count is clamped to at
// least 1, a negative capital is floored to zero.
func (s Settings) normalize() Settings {
	if s.CompanyCount < 1 {
		s.CompanyCount = 1
	}
	if s.TotalCapital.IsNegative() {
		s.TotalCapital = M(0)
	}
	return s
}

// Allocation returns the capital earmarked for one position:
// totalCapital / companyCount. Guarded to 0 for a non-positive count, even
// though normalize makes that unreachable through the aggregate.
func (s Settings) Allocation() Money {
	if s.CompanyCount <= 0 {
		return M(0)
	}
	return s.TotalCapital.DivCount(s.CompanyCount)
}

// ParseCapital leniently parses a user-entered capital amount. Invalid input
// is coerced to zero, per the settings input policy.
func ParseCapital(input string) Money {
	d, err := decimal.NewFromString(input)
	if err != nil {
		log.Printf("invalid capital amount %q, using 0", input)
		return M(0)
	}
	return M(d)
}
