package gemini

import (
	"encoding/json"
	"fmt"
	"strconv"

	"google.golang.org/genai"

	"github.com/etnz/fairvalue"
)

// prompt asks for the fundamentals of one symbol on the Stock Exchange of
// Thailand, pinned to a full fiscal year so the dividend figure is a real
// trailing annual amount and not a single interim payment.
func prompt(symbol string, fiscalYear int) string {
	return fmt.Sprintf(`You are a financial analyst. Search for the stock %q on the Stock Exchange of Thailand (SET).

Find and provide the following data for the FULL FISCAL YEAR %d:
1. Latest Market Price (in THB)
2. P/E Ratio
3. P/BV Ratio
4. Debt to Equity Ratio (D/E)
5. Return on Equity (ROE) as a percentage
6. Earnings Per Share (EPS)
7. Total Annual Dividend per share paid for the year %d
8. Confirm the year of data (should be %d)
9. The English Company Name (brief, e.g. "PTT Public Company Limited" or "PTT")

Return ONLY a JSON object.`, symbol, fiscalYear, fiscalYear, fiscalYear)
}

// quoteSchema constrains the model's answer to the payload shape below.
var quoteSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"currentPrice":  {Type: genai.TypeNumber},
		"pe":            {Type: genai.TypeNumber},
		"pbv":           {Type: genai.TypeNumber},
		"de":            {Type: genai.TypeNumber},
		"roe":           {Type: genai.TypeNumber},
		"eps":           {Type: genai.TypeNumber},
		"dividend":      {Type: genai.TypeNumber},
		"referenceYear": {Type: genai.TypeString},
		"companyName":   {Type: genai.TypeString},
	},
	Required: []string{"currentPrice", "pe", "pbv", "de", "roe", "eps", "dividend", "referenceYear", "companyName"},
}

// payload is the JSON object the model returns.
type payload struct {
	CurrentPrice  float64 `json:"currentPrice"`
	PE            float64 `json:"pe"`
	PBV           float64 `json:"pbv"`
	DE            float64 `json:"de"`
	ROE           float64 `json:"roe"`
	EPS           float64 `json:"eps"`
	Dividend      float64 `json:"dividend"`
	ReferenceYear string  `json:"referenceYear"`
	CompanyName   string  `json:"companyName"`
}

// parseQuote turns the model's JSON answer into a portfolio quote. Missing
// optional fields default to zero; the trailing yield is derived from the
// price and dividend pair.
func parseQuote(text string, sources []fairvalue.Source, fiscalYear int) (fairvalue.Quote, error) {
	if text == "" {
		return fairvalue.Quote{}, fmt.Errorf("empty answer from the model")
	}
	var p payload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return fairvalue.Quote{}, fmt.Errorf("could not parse the model answer: %w", err)
	}

	q := fairvalue.Quote{
		Name:          p.CompanyName,
		Price:         fairvalue.M(p.CurrentPrice),
		PE:            fairvalue.Ratio(p.PE),
		PBV:           fairvalue.Ratio(p.PBV),
		DE:            fairvalue.Ratio(p.DE),
		ROE:           fairvalue.Percent(p.ROE),
		EPS:           fairvalue.M(p.EPS),
		Dividend:      fairvalue.M(p.Dividend),
		Sources:       sources,
		ReferenceYear: p.ReferenceYear,
	}
	if p.CurrentPrice > 0 && p.Dividend > 0 {
		q.Yield = fairvalue.Percent(p.Dividend / p.CurrentPrice * 100)
	}
	if q.ReferenceYear == "" {
		q.ReferenceYear = strconv.Itoa(fiscalYear)
	}
	return q, nil
}
