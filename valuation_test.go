package fairvalue

import (
	"math"
	"testing"
)

// closeTo compares two monetary values within floating-point tolerance.
func closeTo(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	if math.Abs(got.AsFloat()-want) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got.AsFloat(), want)
	}
}

func TestValuate_Example(t *testing.T) {
	// The reference scenario: ฿2.00 dividend growing 3%/year discounted at
	// 10%, with ฿200,000 allocated to the position.
	eq := Equity{
		Symbol:         "PTT",
		Price:          M(34.50),
		Dividend:       M(2.00),
		Growth:         3.0,
		RequiredReturn: 10.0,
	}
	r := Valuate(eq, M(200_000))

	if !r.Valid {
		t.Fatalf("Valuate() invalid (%q), want valid", r.Reason)
	}
	closeTo(t, "D1", r.D1, 2.06)
	closeTo(t, "FairPrice", r.FairPrice, 2.06/0.07)
	closeTo(t, "MOS30", r.MOS30, 20.60)
	closeTo(t, "MOS40", r.MOS40, 2.06/0.07*0.6)
	closeTo(t, "MOS50", r.MOS50, 2.06/0.07*0.5)
	if want := Shares(9700); r.Shares30 != want {
		t.Errorf("Shares30 = %v, want %v", r.Shares30, want)
	}
	// forecast yield = 2.06/34.50*100
	if want := Percent(2.06 / 34.50 * 100); !r.ForecastYield.Equal(want) {
		t.Errorf("ForecastYield = %v, want %v", r.ForecastYield, want)
	}
}

func TestValuate_NoDividend(t *testing.T) {
	// Without a trailing dividend the model is invalid regardless of the
	// other inputs.
	testCases := []struct {
		name string
		eq   Equity
	}{
		{"zero dividend", Equity{Price: M(10), Growth: 3, RequiredReturn: 10}},
		{"negative dividend", Equity{Price: M(10), Dividend: M(-1), Growth: 3, RequiredReturn: 10}},
		{"no inputs at all", Equity{}},
		{"degenerate rates too", Equity{Price: M(10), Growth: 12, RequiredReturn: 8}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := Valuate(tc.eq, M(100_000))
			if r.Valid {
				t.Fatal("Valuate() valid, want invalid")
			}
			if r.Reason != ReasonNoDividend {
				t.Errorf("Reason = %q, want %q", r.Reason, ReasonNoDividend)
			}
			if !r.D1.IsZero() || !r.FairPrice.IsZero() || !r.MOS30.IsZero() || r.Shares30 != 0 {
				t.Errorf("invalid result not zeroed: %+v", r)
			}
		})
	}
}

func TestValuate_Degenerate(t *testing.T) {
	// r ≤ g: the perpetuity diverges. D1 and its forecast yield are still
	// computed, everything downstream is zero.
	testCases := []struct {
		name     string
		growth   Percent
		required Percent
	}{
		{"growth above required", 10.0, 8.0},
		{"growth equals required", 10.0, 10.0},
		{"both zero", 0, 0},
		{"negative required below growth", -1.0, -2.0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			eq := Equity{Price: M(34.50), Dividend: M(2.00), Growth: tc.growth, RequiredReturn: tc.required}
			r := Valuate(eq, M(200_000))
			if r.Valid {
				t.Fatal("Valuate() valid, want invalid")
			}
			if r.Reason != ReasonDegenerate {
				t.Errorf("Reason = %q, want %q", r.Reason, ReasonDegenerate)
			}
			wantD1 := 2.00 * (1 + float64(tc.growth)/100)
			closeTo(t, "D1", r.D1, wantD1)
			if !r.FairPrice.IsZero() || !r.MOS50.IsZero() || r.Shares50 != 0 {
				t.Errorf("degenerate result not zeroed: %+v", r)
			}
		})
	}
}

func TestValuate_DegenerateExample(t *testing.T) {
	eq := Equity{Dividend: M(2.00), Growth: 10.0, RequiredReturn: 8.0}
	r := Valuate(eq, M(200_000))
	if r.Valid || r.Reason != ReasonDegenerate {
		t.Fatalf("Valuate() = valid %v reason %q, want invalid %q", r.Valid, r.Reason, ReasonDegenerate)
	}
	closeTo(t, "D1", r.D1, 2.20)
	closeTo(t, "FairPrice", r.FairPrice, 0)
}

func TestValuate_MOSOrdering(t *testing.T) {
	// Whenever the model is valid: mos50 ≤ mos40 ≤ mos30 ≤ fair price.
	testCases := []struct {
		name             string
		dividend, price  float64
		growth, required Percent
		allocation       float64
	}{
		{"reference", 2.00, 34.50, 3, 10, 200_000},
		{"negative growth", 5.00, 100, -2, 8, 500_000},
		{"tiny spread", 1.00, 20, 9.9, 10, 1_000_000},
		{"large dividend", 12.50, 80, 1, 6, 50_000},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			eq := Equity{Price: M(tc.price), Dividend: M(tc.dividend), Growth: tc.growth, RequiredReturn: tc.required}
			r := Valuate(eq, M(tc.allocation))
			if !r.Valid {
				t.Fatalf("Valuate() invalid (%q), want valid", r.Reason)
			}
			if r.MOS50.GreaterThan(r.MOS40) || r.MOS40.GreaterThan(r.MOS30) || r.MOS30.GreaterThan(r.FairPrice) {
				t.Errorf("MOS ordering violated: 50=%v 40=%v 30=%v fair=%v",
					r.MOS50.AsFloat(), r.MOS40.AsFloat(), r.MOS30.AsFloat(), r.FairPrice.AsFloat())
			}
		})
	}
}

func TestValuate_BoardLots(t *testing.T) {
	// Share counts are exact multiples of the board lot and never exceed
	// what the allocation affords at the tier price.
	eq := Equity{Price: M(34.50), Dividend: M(2.00), Growth: 3, RequiredReturn: 10}
	allocations := []float64{0, 1, 999, 20_000, 200_000, 3_333_333.33}
	for _, a := range allocations {
		r := Valuate(eq, M(a))
		tiers := []struct {
			price  Money
			shares Shares
		}{
			{r.MOS30, r.Shares30},
			{r.MOS40, r.Shares40},
			{r.MOS50, r.Shares50},
		}
		for _, tier := range tiers {
			if tier.shares%BoardLot != 0 {
				t.Errorf("allocation %v: %v shares is not a whole number of lots", a, tier.shares)
			}
			affordable := math.Floor(a / tier.price.AsFloat())
			if float64(tier.shares) > affordable {
				t.Errorf("allocation %v: %v shares exceeds the %v affordable at %v",
					a, tier.shares, affordable, tier.price.AsFloat())
			}
		}
	}
}

func TestValuate_ZeroPrice(t *testing.T) {
	// A zero price must not produce an infinite forecast yield.
	eq := Equity{Dividend: M(2.00), Growth: 3, RequiredReturn: 10}
	r := Valuate(eq, M(200_000))
	if !r.Valid {
		t.Fatalf("Valuate() invalid (%q), want valid", r.Reason)
	}
	if r.ForecastYield != 0 {
		t.Errorf("ForecastYield = %v, want 0 for a zero price", r.ForecastYield)
	}
}

func TestValuate_IsPure(t *testing.T) {
	eq := Equity{Price: M(34.50), Dividend: M(2.00), Growth: 3, RequiredReturn: 10}
	a := Valuate(eq, M(200_000))
	b := Valuate(eq, M(200_000))
	if !a.FairPrice.Equal(b.FairPrice) || a.Shares30 != b.Shares30 || a.Valid != b.Valid {
		t.Errorf("Valuate() is not deterministic: %+v vs %+v", a, b)
	}
}

func TestLotShares(t *testing.T) {
	testCases := []struct {
		name              string
		allocation, price float64
		want              Shares
	}{
		{"reference tier", 200_000, 20.60, 9700},
		{"exact lot", 10_000, 100, 100},
		{"below one lot", 500, 100, 0},
		{"zero price", 10_000, 0, 0},
		{"zero allocation", 0, 10, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LotShares(M(tc.allocation), M(tc.price)); got != tc.want {
				t.Errorf("LotShares(%v, %v) = %v, want %v", tc.allocation, tc.price, got, tc.want)
			}
		})
	}
}
