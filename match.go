package portfolio

import (
	"slices"
	"strings"
)

// MatchedLot is one reconciled round trip: a quantity of an instrument bought
// on BuyDate and sold on SellDate, or still held.
//
// An open lot carries the as-of date the matcher was given as its SellDate
// and a zero SellPrice. Lots are immutable once emitted.
type MatchedLot struct {
	Symbol    string
	ISIN      string
	Quantity  Quantity
	BuyDate   Date
	SellDate  Date
	BuyPrice  Money
	SellPrice Money
	Open      bool // true when no sell has covered this quantity yet
}

// MarshalJSON writes the lot with a stable field order.
func (l MatchedLot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", l.Symbol)
	w.Append("isin", l.ISIN)
	w.Append("quantity", l.Quantity)
	w.Append("buyDate", l.BuyDate)
	w.Append("sellDate", l.SellDate)
	w.Append("buyPrice", l.BuyPrice)
	w.Append("sellPrice", l.SellPrice)
	w.Optional("open", l.Open)
	return w.MarshalJSON()
}

// remaining is the matcher's working view of one summary: the live quantity
// left to consume, kept apart from the original summary quantity.
type remaining struct {
	SideSummary
	qty  Quantity
	done bool
}

// Match reconciles buy summaries against sell summaries into matched lots,
// greedily and oldest-first.
//
// The matcher imposes its own total order, symbol then isin then date, with
// quantity and price breaking same-day ties, so the output is reproducible
// whatever order the caller supplies. Within each
// (symbol, isin) pair the oldest buy consumes the oldest available sell
// quantity first:
//
//   - equal remaining quantities settle both sides into one lot;
//   - a larger buy absorbs the whole sell into one lot and keeps scanning
//     later sells with its reduced remainder;
//   - a smaller buy emits nothing against that sell and moves on to the next.
//
// Any buy quantity still unconsumed at the end becomes a single open lot
// stamped with asOf and a zero sell price. That is an open position, not an
// error. Sell quantity left unconsumed is dropped.
func Match(buys, sells []SideSummary, asOf Date) []MatchedLot {
	bq := newQueue(buys)
	sq := newQueue(sells)

	var lots []MatchedLot
	for i := range bq {
		buy := &bq[i]
		for j := range sq {
			sell := &sq[j]
			if sell.done || buy.done {
				continue
			}
			if buy.Symbol != sell.Symbol || buy.ISIN != sell.ISIN {
				continue
			}

			switch {
			case buy.qty.Equal(sell.qty):
				lots = append(lots, closedLot(buy, sell, buy.qty))
				buy.done = true
				sell.done = true
			case buy.qty.GreaterThan(sell.qty):
				lots = append(lots, closedLot(buy, sell, sell.qty))
				buy.qty = buy.qty.Sub(sell.qty)
				sell.done = true
			default:
				// buy < sell: nothing to emit for this pair, the sell stays
				// available for a later, larger buy.
			}
		}
	}

	// Whatever buy quantity survived the scan is still held today.
	for i := range bq {
		buy := &bq[i]
		if buy.done || !buy.qty.IsPositive() {
			continue
		}
		lots = append(lots, MatchedLot{
			Symbol:    buy.Symbol,
			ISIN:      buy.ISIN,
			Quantity:  buy.qty,
			BuyDate:   buy.Date,
			SellDate:  asOf,
			BuyPrice:  buy.Price,
			SellPrice: M(0, buy.Price.Currency()),
			Open:      true,
		})
	}
	return lots
}

func closedLot(buy, sell *remaining, qty Quantity) MatchedLot {
	return MatchedLot{
		Symbol:    buy.Symbol,
		ISIN:      buy.ISIN,
		Quantity:  qty,
		BuyDate:   buy.Date,
		SellDate:  sell.Date,
		BuyPrice:  buy.Price,
		SellPrice: sell.Price,
	}
}

// newQueue copies summaries into an index-addressed working queue in the
// matcher's canonical order. The queue owns all mutable state during the
// scan; the caller's slices are never touched.
func newQueue(summaries []SideSummary) []remaining {
	queue := make([]remaining, 0, len(summaries))
	for _, s := range summaries {
		queue = append(queue, remaining{SideSummary: s, qty: s.Quantity})
	}
	slices.SortFunc(queue, func(a, b remaining) int {
		if c := strings.Compare(a.Symbol, b.Symbol); c != 0 {
			return c
		}
		if c := strings.Compare(a.ISIN, b.ISIN); c != 0 {
			return c
		}
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		// same-day summaries: break ties on quantity then price so the
		// order stays total and the scan deterministic
		if c := a.Quantity.Cmp(b.Quantity); c != 0 {
			return c
		}
		return a.Price.Cmp(b.Price)
	})
	return queue
}
