// Package cmd implements the CLI application to manage the portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fairvalue"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&tableCmd{}, "portfolio")
	c.Register(&addCmd{}, "portfolio")
	c.Register(&editCmd{}, "portfolio")
	c.Register(&rmCmd{}, "portfolio")
	c.Register(&settingsCmd{}, "portfolio")

	c.Register(&fetchCmd{}, "market data")
	c.Register(&priceCmd{}, "market data")
	c.Register(&sourcesCmd{}, "market data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", fairvalue.DefaultFile, "Path to the portfolio file (JSON format)")

// OpenPortfolio loads the portfolio from the app portfolio file. A missing or
// unreadable file yields an empty portfolio, first runs must just work.
func OpenPortfolio() *fairvalue.Portfolio {
	return fairvalue.Load(*portfolioFile)
}

// ClosePortfolio persists the portfolio back to the app portfolio file.
func ClosePortfolio(p *fairvalue.Portfolio) subcommands.ExitStatus {
	if err := fairvalue.Save(*portfolioFile, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// findRow resolves a user-entered symbol to the matching equity, with a
// uniform error message.
func findRow(p *fairvalue.Portfolio, symbol string) (fairvalue.Equity, subcommands.ExitStatus) {
	eq, ok := p.Find(symbol)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no stock %q in the portfolio\n", fairvalue.NormalizeSymbol(symbol))
		return fairvalue.Equity{}, subcommands.ExitFailure
	}
	return eq, subcommands.ExitSuccess
}
