package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fairvalue"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a stock to the portfolio" }
func (*addCmd) Usage() string {
	return `fav add [<symbol>...]

  Adds one row per symbol, with the default growth and required return
  assumptions. Without arguments a single blank row is added, to be filled
  with 'fav edit'.

Usage Examples:
$ fav add PTT AOT
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := OpenPortfolio()

	symbols := f.Args()
	if len(symbols) == 0 {
		symbols = []string{""}
	}
	for _, symbol := range symbols {
		eq := p.Add()
		if symbol != "" {
			if err := p.Update(eq.ID, fairvalue.SetSymbol{Symbol: symbol}); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
		}
	}

	if status := ClosePortfolio(p); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added %d stock(s) to %s\n", len(symbols), *portfolioFile)
	return subcommands.ExitSuccess
}
