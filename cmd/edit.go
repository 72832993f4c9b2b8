package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fairvalue"
	"github.com/google/subcommands"
)

type editCmd struct {
	symbol string
	name   string
	price  float64
	div    float64
	yield  float64
	growth float64
	req    float64
	pe     float64
	pbv    float64
	de     float64
	roe    float64
	eps    float64
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit the fields of a tracked stock" }
func (*editCmd) Usage() string {
	return `fav edit [flags] <symbol>

  Edits the given stock. Only the flags actually passed are applied. The
  price, dividend and yield are coupled: setting any one of the three
  recomputes the others, so they can never disagree.

Usage Examples:
# a 5% yield at the current price, dividend derived
$ fav edit -yield 5 PTT
# a more cautious growth assumption
$ fav edit -g 2 -r 11 PTT
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "New ticker symbol.")
	f.StringVar(&c.name, "name", "", "Company name.")
	f.Float64Var(&c.price, "price", 0, "Current market price per share.")
	f.Float64Var(&c.div, "div", 0, "Annual dividend per share. Recomputes the yield.")
	f.Float64Var(&c.yield, "yield", 0, "Trailing dividend yield in percent. Recomputes the dividend.")
	f.Float64Var(&c.growth, "g", 0, "Expected perpetual dividend growth rate in percent.")
	f.Float64Var(&c.req, "r", 0, "Required rate of return in percent.")
	f.Float64Var(&c.pe, "pe", 0, "Price/earnings multiple.")
	f.Float64Var(&c.pbv, "pbv", 0, "Price/book multiple.")
	f.Float64Var(&c.de, "de", 0, "Debt/equity ratio.")
	f.Float64Var(&c.roe, "roe", 0, "Return on equity in percent.")
	f.Float64Var(&c.eps, "eps", 0, "Earnings per share.")
}

// edits maps the flags the user actually passed to edit operations, in flag
// order.
func (c *editCmd) edits(f *flag.FlagSet) []fairvalue.Edit {
	var edits []fairvalue.Edit
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "symbol":
			edits = append(edits, fairvalue.SetSymbol{Symbol: c.symbol})
		case "name":
			edits = append(edits, fairvalue.SetName{Name: c.name})
		case "price":
			edits = append(edits, fairvalue.SetPrice{Price: fairvalue.M(c.price)})
		case "div":
			edits = append(edits, fairvalue.SetDividend{Dividend: fairvalue.M(c.div)})
		case "yield":
			edits = append(edits, fairvalue.SetYield{Yield: fairvalue.Percent(c.yield)})
		case "g":
			edits = append(edits, fairvalue.SetGrowth{Growth: fairvalue.Percent(c.growth)})
		case "r":
			edits = append(edits, fairvalue.SetRequiredReturn{RequiredReturn: fairvalue.Percent(c.req)})
		case "pe":
			edits = append(edits, fairvalue.SetPE{PE: fairvalue.Ratio(c.pe)})
		case "pbv":
			edits = append(edits, fairvalue.SetPBV{PBV: fairvalue.Ratio(c.pbv)})
		case "de":
			edits = append(edits, fairvalue.SetDE{DE: fairvalue.Ratio(c.de)})
		case "roe":
			edits = append(edits, fairvalue.SetROE{ROE: fairvalue.Percent(c.roe)})
		case "eps":
			edits = append(edits, fairvalue.SetEPS{EPS: fairvalue.M(c.eps)})
		}
	})
	return edits
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one symbol")
		return subcommands.ExitUsageError
	}

	p := OpenPortfolio()
	eq, status := findRow(p, f.Arg(0))
	if status != subcommands.ExitSuccess {
		return status
	}

	edits := c.edits(f)
	if len(edits) == 0 {
		fmt.Fprintln(os.Stderr, "no fields to edit, see 'fav help edit'")
		return subcommands.ExitUsageError
	}

	if err := p.Update(eq.ID, edits...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return ClosePortfolio(p)
}
