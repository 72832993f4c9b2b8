package gemini

import (
	"math"
	"strings"
	"testing"

	"github.com/etnz/fairvalue"
)

func TestPrompt(t *testing.T) {
	p := prompt("PTT", 2025)
	for _, want := range []string{`"PTT"`, "2025", "Stock Exchange of Thailand"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt misses %q:\n%s", want, p)
		}
	}
}

func TestParseQuote(t *testing.T) {
	answer := `{
		"currentPrice": 34.50,
		"pe": 8.9,
		"pbv": 0.9,
		"de": 0.95,
		"roe": 10.2,
		"eps": 3.87,
		"dividend": 2.00,
		"referenceYear": "2025",
		"companyName": "PTT Public Company Limited"
	}`
	sources := []fairvalue.Source{{Title: "SET", URI: "https://www.set.or.th"}}

	q, err := parseQuote(answer, sources, 2025)
	if err != nil {
		t.Fatalf("parseQuote() = %v", err)
	}
	if q.Name != "PTT Public Company Limited" {
		t.Errorf("Name = %q", q.Name)
	}
	if !q.Price.Equal(fairvalue.M(34.50)) || !q.Dividend.Equal(fairvalue.M(2.00)) || !q.EPS.Equal(fairvalue.M(3.87)) {
		t.Errorf("money fields = %+v", q)
	}
	if q.PE != 8.9 || q.PBV != 0.9 || q.DE != 0.95 {
		t.Errorf("ratios = %v %v %v", q.PE, q.PBV, q.DE)
	}
	if wantYield := 2.00 / 34.50 * 100; math.Abs(float64(q.Yield)-wantYield) > 1e-9 {
		t.Errorf("Yield = %v, want %v", q.Yield, wantYield)
	}
	if q.ReferenceYear != "2025" || len(q.Sources) != 1 {
		t.Errorf("provenance = %q %v", q.ReferenceYear, q.Sources)
	}
}

func TestParseQuote_Defaults(t *testing.T) {
	// the model sometimes omits figures it could not find: they default to
	// zero, and the missing year falls back to the requested fiscal year
	q, err := parseQuote(`{"companyName":"X"}`, nil, 2025)
	if err != nil {
		t.Fatalf("parseQuote() = %v", err)
	}
	if !q.Price.IsZero() || !q.Dividend.IsZero() || q.Yield != 0 {
		t.Errorf("missing fields not zeroed: %+v", q)
	}
	if q.ReferenceYear != "2025" {
		t.Errorf("ReferenceYear = %q, want the fallback 2025", q.ReferenceYear)
	}
}

func TestParseQuote_Bad(t *testing.T) {
	if _, err := parseQuote("", nil, 2025); err == nil {
		t.Error("parseQuote(empty) = nil, want an error")
	}
	if _, err := parseQuote("not json", nil, 2025); err == nil {
		t.Error("parseQuote(garbage) = nil, want an error")
	}
}
