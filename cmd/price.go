package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fairvalue/renderer"
	"github.com/google/subcommands"
)

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "refresh prices from the public settrade endpoint" }
func (*priceCmd) Usage() string {
	return `fav price [<symbol>...]

  Updates only the market price of the given stocks (all of them by
  default) from the public settrade quote endpoint, recomputing the
  trailing yield. No API key needed; quotes are cached for the day.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := OpenPortfolio()

	var ids []string
	if f.NArg() > 0 {
		for _, symbol := range f.Args() {
			eq, status := findRow(p, symbol)
			if status != subcommands.ExitSuccess {
				return status
			}
			ids = append(ids, eq.ID)
		}
	} else {
		for _, eq := range p.Equities() {
			if strings.TrimSpace(eq.Symbol) == "" {
				continue
			}
			ids = append(ids, eq.ID)
		}
	}

	var failed bool
	for _, id := range ids {
		if err := p.QuickRefresh(id); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
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
