package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/RD191295/Portfolio-Analytics"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	asof   string
	suffix string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export valued lots as JSONL" }
func (*exportCmd) Usage() string {
	return `pan export [-asof <date>] [-suffix <market suffix>]

  Runs the full pipeline and writes the valued lots to stdout as JSONL, one
  lot per line in a stable field order, ready for an external reporting tool.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asof, "asof", "0d", "Observation date for open lots. Supports relative dates like -1d.")
	f.StringVar(&c.suffix, "suffix", portfolio.DefaultMarketSuffix, "Market suffix appended to symbols")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := portfolio.EncodeLots(os.Stdout, valued); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
