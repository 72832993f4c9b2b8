package fairvalue

import "strconv"

// BoardLot is the minimum tradeable share increment on the exchange.
// Position sizes are always rounded down to a whole number of lots.
const BoardLot = 100

// Shares is a whole number of shares.
type Shares int64

// LotShares returns how many shares the allocation affords at the given
// price, rounded down to a whole number of board lots. A zero or negative
// price affords nothing.
func LotShares(allocation, price Money) Shares {
	if !price.IsPositive() || allocation.IsNegative() {
		return 0
	}
	affordable := allocation.DivMoney(price).IntPart()
	return Shares(affordable / BoardLot * BoardLot)
}

// String renders the count as a grouped integer (e.g. "9,700").
func (s Shares) String() string {
	raw := strconv.FormatInt(int64(s), 10)
	neg := false
	if len(raw) > 0 && raw[0] == '-' {
		neg, raw = true, raw[1:]
	}
	var out []byte
	for i, c := range []byte(raw) {
		if i > 0 && (len(raw)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
