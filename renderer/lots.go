// Package renderer turns the engine's typed output into markdown for the
// terminal. It formats values only; all numbers come computed from the
// portfolio package.
package renderer

import (
	"fmt"
	"strings"

	portfolio "github.com/RD191295/Portfolio-Analytics"
)

// LotsMarkdown renders matched lots as a markdown table.
func LotsMarkdown(lots []portfolio.MatchedLot, asOf portfolio.Date) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Matched Lots as of %s\n\n", asOf)

	fmt.Fprintln(&b, "| Symbol | ISIN | Quantity | Buy Date | Buy Price | Sell Date | Sell Price |")
	fmt.Fprintln(&b, "|:---|:---|---:|:---|---:|:---|---:|")

	for _, lot := range lots {
		sellDate := lot.SellDate.String()
		sellPrice := lot.SellPrice.String()
		if lot.Open {
			sellDate = "open"
			sellPrice = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			lot.Symbol,
			lot.ISIN,
			lot.Quantity,
			lot.BuyDate,
			lot.BuyPrice,
			sellDate,
			sellPrice,
		)
	}
	return b.String()
}
