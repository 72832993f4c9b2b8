package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fairvalue/renderer"
	"github.com/google/subcommands"
)

type tableCmd struct{}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "display the portfolio valuation table" }
func (*tableCmd) Usage() string {
	return `fav table

  Displays every tracked stock with its projected dividend, fair price,
  margin-of-safety buy targets and affordable board lots under the current
  capital plan.
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {}

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := OpenPortfolio()
	printMarkdown(renderer.PortfolioMarkdown(renderer.NewTable(p)))
	return subcommands.ExitSuccess
}
