package portfolio

import "errors"

// DefaultMarketSuffix is the ticker suffix for the National Stock Exchange,
// where the original tradebooks this tool consumes are executed.
const DefaultMarketSuffix = ".NS"

// ErrEmptyPortfolio is returned when valuation is asked for a lot set with no
// invested notional. Weights over an empty portfolio are meaningless, so this
// is surfaced instead of producing zero or NaN weights.
var ErrEmptyPortfolio = errors.New("portfolio has no invested notional")

// ValuedLot is a matched lot extended with its market ticker, its invested
// notional, and its share of the whole portfolio's invested notional.
type ValuedLot struct {
	MatchedLot
	Ticker   string  // symbol with the market suffix appended
	Notional Money   // matched quantity × buy price
	Weight   Percent // share of total invested notional, in percent points
}

// MarshalJSON writes the valued lot with a stable field order.
func (v ValuedLot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(v.MatchedLot)
	w.Append("ticker", v.Ticker)
	w.Append("notional", v.Notional)
	w.Append("weight", float64(v.Weight))
	return w.MarshalJSON()
}

// Value computes each lot's invested notional and portfolio weight.
//
// The ticker is the lot's symbol with suffix appended; this is a local
// formatting step, not a lookup. Notional math stays in decimals with no
// rounding; the weight is converted to a float only at the very end. Weights
// over the returned set sum to 100% up to floating point.
//
// Value fails with ErrEmptyPortfolio when lots is empty or the total
// notional is zero.
func Value(lots []MatchedLot, suffix string) ([]ValuedLot, error) {
	var total Money
	notionals := make([]Money, len(lots))
	for i, lot := range lots {
		notionals[i] = lot.BuyPrice.Mul(lot.Quantity)
		total = total.Add(notionals[i])
	}
	if len(lots) == 0 || total.IsZero() {
		return nil, ErrEmptyPortfolio
	}

	valued := make([]ValuedLot, len(lots))
	for i, lot := range lots {
		valued[i] = ValuedLot{
			MatchedLot: lot,
			Ticker:     lot.Symbol + suffix,
			Notional:   notionals[i],
			Weight:     Percent(100 * notionals[i].DivPrice(total).InexactFloat64()),
		}
	}
	return valued, nil
}
