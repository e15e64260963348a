package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	portfolio "github.com/RD191295/Portfolio-Analytics"
	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the tradebook into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `pan fmt [-w]

  Validates the tradebook and writes it back in a canonical CSV form: the six
  required columns only, rows sorted by date. By default the result goes to
  stdout; -w rewrites the tradebook file in place.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "Rewrite the tradebook file instead of printing to stdout")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tb, err := DecodeTradebook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !c.write {
		if err := portfolio.EncodeTradebook(os.Stdout, tb); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(*tradebookFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot rewrite tradebook %q: %v\n", *tradebookFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := portfolio.EncodeTradebook(out, tb); err != nil {
		fmt.Fprintf(os.Stderr, "cannot rewrite tradebook %q: %v\n", *tradebookFile, err)
		return subcommands.ExitFailure
	}
	log.Printf("formatted %d records into %s", tb.Len(), *tradebookFile)
	return subcommands.ExitSuccess
}
