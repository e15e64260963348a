// Package cmd implements the CLI application to analyze a tradebook.
package cmd

import (
	"flag"
	"fmt"
	"os"

	portfolio "github.com/RD191295/Portfolio-Analytics"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&lotsCmd{}, "analysis")
	c.Register(&weightsCmd{}, "analysis")
	c.Register(&reportCmd{}, "analysis")

	c.Register(&fmtCmd{}, "tradebook")
	c.Register(&exportCmd{}, "tradebook")

	c.Register(&topicCmd{}, "documentation")
}

// Names returns the names of all registered subcommands, for shell completion.
func Names() []string {
	return []string{"lots", "weights", "report", "fmt", "export", "topic"}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var tradebookFile = flag.String("tradebook", "tradebook.csv", "Path to the tradebook CSV file")
var currency = flag.String("currency", "INR", "Currency of the tradebook prices")

// DecodeTradebook loads the app tradebook file.
func DecodeTradebook() (*portfolio.Tradebook, error) {
	f, err := os.Open(*tradebookFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open tradebook %q: %w", *tradebookFile, err)
	}
	defer f.Close()

	tb, err := portfolio.DecodeTradebook(f, *currency)
	if err != nil {
		return nil, fmt.Errorf("cannot read tradebook %q: %w", *tradebookFile, err)
	}
	return tb, nil
}

// printMarkdown renders markdown to the terminal. When rendering fails the
// raw markdown is still printed: output over prettiness.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseAsOf resolves the -asof flag of analysis commands.
func parseAsOf(asof string) (portfolio.Date, error) {
	d, err := portfolio.ParseDate(asof)
	if err != nil {
		return portfolio.Date{}, fmt.Errorf("invalid -asof date: %w", err)
	}
	return d, nil
}
