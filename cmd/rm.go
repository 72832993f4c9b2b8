package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type rmCmd struct {
	force bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a stock from the portfolio" }
func (*rmCmd) Usage() string {
	return `fav rm [-f] <symbol>

  Removes the given stock. Removal is destructive, so it asks for
  confirmation unless -f is passed.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Remove without asking for confirmation.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one symbol")
		return subcommands.ExitUsageError
	}

	p := OpenPortfolio()
	eq, status := findRow(p, f.Arg(0))
	if status != subcommands.ExitSuccess {
		return status
	}

	if !c.force {
		fmt.Printf("Remove %s from the portfolio? [y/N] ", eq.Symbol)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if s := strings.ToLower(strings.TrimSpace(answer)); s != "y" && s != "yes" {
			fmt.Println("aborted")
			return subcommands.ExitSuccess
		}
	}

	if err := p.Remove(eq.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := ClosePortfolio(p); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Removed %s\n", eq.Symbol)
	return subcommands.ExitSuccess
}
