package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/RD191295/Portfolio-Analytics/renderer"
	"github.com/google/subcommands"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	asof string
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "reconcile the tradebook into matched buy/sell lots" }
func (*lotsCmd) Usage() string {
	return `pan lots [-asof <date>]

  Aggregates the tradebook and pairs every bought quantity with its sell.
  Quantity still held is shown as an open lot as of the -asof date.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asof, "asof", "0d", "Observation date for open lots. Supports relative dates like -1d.")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	lots := tb.Lots(asOf)
	printMarkdown(renderer.LotsMarkdown(lots, asOf))
	return subcommands.ExitSuccess
}
