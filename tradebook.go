package portfolio

import "fmt"

// Tradebook is an in-memory ledger of raw trade executions.
//
// Records are validated on the way in and immutable afterwards; the book
// only grows. It is the single input of the reconciliation pipeline.
type Tradebook struct {
	records []TradeRecord
}

// NewTradebook creates an empty tradebook.
func NewTradebook() *Tradebook {
	return &Tradebook{records: make([]TradeRecord, 0)}
}

// Append validates and adds records to the book. The first malformed record
// aborts the whole call: no partial batch is ever admitted.
func (tb *Tradebook) Append(records ...TradeRecord) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("malformed input: %w", err)
		}
	}
	tb.records = append(tb.records, records...)
	return nil
}

// Len returns the number of records in the book.
func (tb *Tradebook) Len() int { return len(tb.records) }

// Records returns a copy of the raw records, in insertion order.
func (tb *Tradebook) Records() []TradeRecord {
	out := make([]TradeRecord, len(tb.records))
	copy(out, tb.records)
	return out
}

// Lots runs aggregation and lot matching over the book: every bought unit is
// paired with its sell, or marked still open as of asOf.
func (tb *Tradebook) Lots(asOf Date) []MatchedLot {
	buys, sells := SplitSides(Aggregate(tb.records))
	return Match(buys, sells, asOf)
}

// Positions runs the full pipeline, aggregation, lot matching and valuation,
// and returns the valued lots ready for a reporting collaborator.
func (tb *Tradebook) Positions(asOf Date, suffix string) ([]ValuedLot, error) {
	return Value(tb.Lots(asOf), suffix)
}
