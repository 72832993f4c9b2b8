package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fairvalue/renderer"
	"github.com/google/subcommands"
)

type sourcesCmd struct{}

func (*sourcesCmd) Name() string     { return "sources" }
func (*sourcesCmd) Synopsis() string { return "show where a stock's figures come from" }
func (*sourcesCmd) Usage() string {
	return `fav sources <symbol>

  Shows the citation sources recorded by the last fetch for the given
  stock, with the fiscal year the figures refer to.
`
}

func (c *sourcesCmd) SetFlags(f *flag.FlagSet) {}

func (c *sourcesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one symbol")
		return subcommands.ExitUsageError
	}

	p := OpenPortfolio()
	eq, status := findRow(p, f.Arg(0))
	if status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.SourcesMarkdown(renderer.NewDetail(eq)))
	return subcommands.ExitSuccess
}
