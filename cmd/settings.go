package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fairvalue"
	"github.com/google/subcommands"
)

type settingsCmd struct {
	capital string
	count   int
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the capital plan" }
func (*settingsCmd) Usage() string {
	return `fav settings [-capital <amount>] [-count <n>]

  Without flags, shows the current capital plan. With flags, changes the
  total investable capital and the target number of positions. The position
  count is clamped to at least 1; an invalid or negative capital amount is
  coerced to 0.

Usage Examples:
$ fav settings -capital 2000000 -count 8
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.capital, "capital", "", "Total investable capital.")
	f.IntVar(&c.count, "count", 0, "Target number of positions.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := OpenPortfolio()

	changed := false
	s := p.Settings()
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "capital":
			s.TotalCapital = fairvalue.ParseCapital(c.capital)
			changed = true
		case "count":
			s.CompanyCount = c.count
			changed = true
		}
	})

	if changed {
		p.SetSettings(s)
		if status := ClosePortfolio(p); status != subcommands.ExitSuccess {
			return status
		}
	}

	s = p.Settings()
	fmt.Printf("Total Capital: %s\n", s.TotalCapital)
	fmt.Printf("Positions:     %d\n", s.CompanyCount)
	fmt.Printf("Per Position:  %s\n", s.Allocation())
	return subcommands.ExitSuccess
}
