package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/RD191295/Portfolio-Analytics"
	"github.com/RD191295/Portfolio-Analytics/renderer"
	"github.com/google/subcommands"
)

// weightsCmd holds the flags for the 'weights' subcommand.
type weightsCmd struct {
	asof   string
	suffix string
}

func (*weightsCmd) Name() string     { return "weights" }
func (*weightsCmd) Synopsis() string { return "portfolio weights per matched lot" }
func (*weightsCmd) Usage() string {
	return `pan weights [-asof <date>] [-suffix <market suffix>]

  Values every matched lot (quantity × buy price) and shows its share of the
  total invested notional.
`
}

func (c *weightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asof, "asof", "0d", "Observation date for open lots. Supports relative dates like -1d.")
	f.StringVar(&c.suffix, "suffix", portfolio.DefaultMarketSuffix, "Market suffix appended to symbols")
}

func (c *weightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := parseAsOf(c.asof)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tb, err := DecodeTradebook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	valued, err := tb.Positions(asOf, c.suffix)
	if errors.Is(err, portfolio.ErrEmptyPortfolio) {
		fmt.Fprintln(os.Stderr, "tradebook has no invested notional, nothing to weigh")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PositionsMarkdown(valued, asOf))
	return subcommands.ExitSuccess
}
