package renderer

import (
	"fmt"
	"io"
	"strings"

	portfolio "github.com/RD191295/Portfolio-Analytics"
)

// ReportMarkdown renders the report specification: the tickers and date
// range an external analytics collaborator would fetch return series for.
func ReportMarkdown(spec portfolio.ReportSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Report Specification\n\n")
	fmt.Fprintf(&b, "Period: %s to %s (%d days)\n\n", spec.Range.From, spec.Range.To, spec.Range.Days())

	fmt.Fprintln(&b, "| Ticker |")
	fmt.Fprintln(&b, "|:---|")
	for _, ticker := range spec.Tickers {
		fmt.Fprintf(&b, "| %s |\n", ticker)
	}
	return b.String()
}

// Markdown is the local Reporter: it renders the spec and the positions
// table instead of fetching returns and benchmarks.
type Markdown struct{}

func (Markdown) Render(w io.Writer, spec portfolio.ReportSpec, lots []portfolio.ValuedLot) error {
	if _, err := io.WriteString(w, ReportMarkdown(spec)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n"+PositionsMarkdown(lots, spec.Range.To))
	return err
}

var _ portfolio.Reporter = Markdown{}
