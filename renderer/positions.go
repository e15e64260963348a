package renderer

import (
	"fmt"
	"strings"

	portfolio "github.com/RD191295/Portfolio-Analytics"
)

// PositionsMarkdown renders valued lots with their portfolio weights as a
// markdown table, keeping the matcher's lot order.
func PositionsMarkdown(lots []portfolio.ValuedLot, asOf portfolio.Date) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Positions as of %s\n\n", asOf)

	fmt.Fprintln(&b, "| Ticker | Quantity | Buy Date | Sell Date | Invested | Weight |")
	fmt.Fprintln(&b, "|:---|---:|:---|:---|---:|---:|")

	var total portfolio.Percent
	for _, lot := range lots {
		sellDate := lot.SellDate.String()
		if lot.Open {
			sellDate = "open"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			lot.Ticker,
			lot.Quantity,
			lot.BuyDate,
			sellDate,
			lot.Notional,
			lot.Weight,
		)
		total += lot.Weight
	}
	fmt.Fprintf(&b, "| **Total** | | | | | **%s** |\n", total)
	return b.String()
}
