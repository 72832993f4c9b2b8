package fairvalue

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "symbol": "PTT",
	    "nameEN": "PTT PUBLIC COMPANY LIMITED",
	    "last": 34.50,
	    "prior": 34.25,
	    "marketStatus": "Closed",
	    ...
	}
*/

// the public settrade quote endpoint, no credential needed.
// a variable so tests can point it at a local server.
var settradeQuoteURL = "https://www.settrade.com/api/set/stock/%s/info?lang=en"

// settradeLast returns the latest price for a SET symbol from the public
// settrade quote endpoint. A once-a-day value is enough for this tool, so
// the call goes through the daily cache.
func settradeLast(client *http.Client, symbol string) (Money, error) {
	addr := fmt.Sprintf(settradeQuoteURL, symbol)

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return M(0), fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	path := "$.last"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return M(0), fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// outside trading hours 'last' can be missing or zero, fall back to the
	// prior close
	if f, ok := jval.(float64); !ok || f == 0 {
		path = "$.prior"
		jval, err = jsonpath.Get(path, jobj)
		if err != nil {
			return M(0), fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
		}
	}

	val, ok := jval.(float64)
	if !ok {
		return M(0), fmt.Errorf("error parsing %q: %q not a number: %v", symbol, path, jval)
	}
	return M(val), nil
}

// QuickRefresh updates only the price of one row from the public settrade
// quote endpoint, recomputing the trailing yield from the held dividend. It
// is the cheap alternative to a full Refresh: no provider credential, no
// model call.
func (p *Portfolio) QuickRefresh(id string) error {
	eq, ok := p.Get(id)
	if !ok {
		return fmt.Errorf("refreshing %q: %w", id, ErrNotFound)
	}
	symbol := NormalizeSymbol(eq.Symbol)
	if symbol == "" {
		return ErrSymbolRequired
	}

	price, err := settradeLast(daily(), symbol)
	if err != nil {
		return err
	}
	return p.Update(id, SetSymbol{symbol}, SetPrice{price})
}
