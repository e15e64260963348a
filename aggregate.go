package portfolio

import (
	"slices"
	"strings"
)

// SideSummary condenses all executions of one instrument on one side into a
// single record: the total quantity, a representative date, and the
// unweighted mean execution price.
//
// The representative date is asymmetric on purpose: a buy position opens on
// its first purchase, a closed position closes on its last sale. So buy
// groups carry their earliest trade date and sell groups their latest.
type SideSummary struct {
	Symbol   string
	ISIN     string
	Side     Side
	Quantity Quantity // sum of all constituent quantities
	Date     Date     // earliest date for buys, latest for sells
	Price    Money    // arithmetic mean of constituent prices, unweighted by quantity
}

// Aggregate groups trade records by (symbol, isin, side) and summarizes each
// group. Records whose side is neither buy nor sell contribute to nothing.
//
// The result is sorted by symbol, isin, then side, so the output is stable
// for a given input set regardless of record order. Aggregate is a pure
// function over its input.
func Aggregate(records []TradeRecord) []SideSummary {
	type groupKey struct {
		symbol, isin string
		side         Side
	}
	type group struct {
		summary SideSummary
		count   int64
	}

	groups := make(map[groupKey]*group)
	for _, r := range records {
		if r.Side != Buy && r.Side != Sell {
			continue
		}
		key := groupKey{r.Symbol, r.ISIN, r.Side}
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{
				summary: SideSummary{
					Symbol:   r.Symbol,
					ISIN:     r.ISIN,
					Side:     r.Side,
					Quantity: r.Quantity,
					Date:     r.Date,
					Price:    r.Price,
				},
				count: 1,
			}
			continue
		}

		g.summary.Quantity = g.summary.Quantity.Add(r.Quantity)
		g.summary.Price = g.summary.Price.Add(r.Price)
		g.count++

		switch r.Side {
		case Buy:
			if r.Date.Before(g.summary.Date) {
				g.summary.Date = r.Date
			}
		case Sell:
			if r.Date.After(g.summary.Date) {
				g.summary.Date = r.Date
			}
		}
	}

	summaries := make([]SideSummary, 0, len(groups))
	for _, g := range groups {
		g.summary.Price = g.summary.Price.Div(Q(g.count))
		summaries = append(summaries, g.summary)
	}

	slices.SortFunc(summaries, func(a, b SideSummary) int {
		if c := strings.Compare(a.Symbol, b.Symbol); c != 0 {
			return c
		}
		if c := strings.Compare(a.ISIN, b.ISIN); c != 0 {
			return c
		}
		return strings.Compare(string(a.Side), string(b.Side))
	})
	return summaries
}

// SplitSides partitions summaries into the buy and sell sequences the lot
// matcher consumes.
func SplitSides(summaries []SideSummary) (buys, sells []SideSummary) {
	for _, s := range summaries {
		switch s.Side {
		case Buy:
			buys = append(buys, s)
		case Sell:
			sells = append(sells, s)
		}
	}
	return buys, sells
}
