package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	portfolio "github.com/RD191295/Portfolio-Analytics"
	"github.com/RD191295/Portfolio-Analytics/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	asof   string
	suffix string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "report specification: tickers and date range" }
func (*reportCmd) Usage() string {
	return `pan report [-asof <date>] [-suffix <market suffix>]

  Derives what an analytics report over this tradebook would cover: the
  distinct tickers held and the date range from the earliest buy to the
  latest sell (open positions extend the range to the -asof date), plus the
  positions table.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asof, "asof", "0d", "Observation date for open lots. Supports relative dates like -1d.")
	f.StringVar(&c.suffix, "suffix", portfolio.DefaultMarketSuffix, "Market suffix appended to symbols")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	spec, err := portfolio.NewReportSpec(valued)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	if err := (renderer.Markdown{}).Render(&b, spec, valued); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
