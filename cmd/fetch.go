package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fairvalue"
	"github.com/etnz/fairvalue/gemini"
	"github.com/etnz/fairvalue/renderer"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	all bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch fundamentals from the Gemini API" }
func (*fetchCmd) Usage() string {
	return `fav fetch [-all | <symbol>...]

  Fetches the last full fiscal year fundamentals (price, dividend, P/E,
  P/BV, D/E, ROE, EPS) for the given symbols, or for every stock with -all,
  and overwrites the stored figures. Requires a Gemini API key in the
  GEMINI_API_KEY environment variable.

  One symbol failing never blocks the others; its error is kept on the row
  and shown in the table.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Fetch every stock in the portfolio.")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.all == (f.NArg() > 0) {
		fmt.Fprintln(os.Stderr, "expected either -all or at least one symbol")
		return subcommands.ExitUsageError
	}

	quoter, err := gemini.New(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Set GEMINI_API_KEY to your Gemini API key and retry.")
		return subcommands.ExitFailure
	}

	p := OpenPortfolio()

	var failed bool
	if c.all {
		for _, r := range p.RefreshAll(ctx, quoter) {
			if r.Err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", r.Symbol, r.Err)
				failed = true
			}
		}
	} else {
		for _, symbol := range f.Args() {
			eq, status := findRow(p, symbol)
			if status != subcommands.ExitSuccess {
				return status
			}
			if err := p.Refresh(ctx, eq.ID, quoter); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", eq.Symbol, err)
				failed = true
			}
		}
	}

	if p.NeedsCredential() {
		fmt.Fprintln(os.Stderr, "The Gemini API rejected the credential. Set GEMINI_API_KEY to a valid key and retry.")
	} else if !failed {
		// a clean run proves the credential works again
		p.ClearCredential()
	}

	if status := ClosePortfolio(p); status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.PortfolioMarkdown(renderer.NewTable(p)))
	if failed {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// compile-time check that the provider satisfies the portfolio contract.
var _ fairvalue.Quoter = (*gemini.Client)(nil)
