package portfolio

import (
	"errors"
	"fmt"
)

// Side is the direction of a trade execution.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide parses a trade side. Matching is case-sensitive: tradebooks use
// lowercase "buy"/"sell" and anything else is rejected.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Buy, Sell:
		return Side(s), nil
	default:
		return "", fmt.Errorf("unknown trade side %q", s)
	}
}

// TradeRecord is one raw execution from a tradebook: a quantity of an
// instrument bought or sold at a price on a date.
//
// Records are value types and never mutated after creation.
type TradeRecord struct {
	Symbol   string   // exchange symbol, e.g. "TCS"
	ISIN     string   // instrument identifier
	Side     Side     // buy or sell
	Quantity Quantity // executed quantity, always positive
	Price    Money    // execution price per unit, never negative
	Date     Date     // trade date
}

// Validate checks the record against the ingestion contract: all six fields
// present and well-typed. A violation is reported before any aggregation
// happens; it is never recovered.
func (r TradeRecord) Validate() error {
	if r.Symbol == "" {
		return errors.New("trade record has no symbol")
	}
	if r.ISIN == "" {
		return fmt.Errorf("trade record %s has no isin", r.Symbol)
	}
	if _, err := ParseSide(string(r.Side)); err != nil {
		return fmt.Errorf("trade record %s: %w", r.Symbol, err)
	}
	if !r.Quantity.IsPositive() {
		return fmt.Errorf("trade record %s has non-positive quantity %s", r.Symbol, r.Quantity)
	}
	if r.Price.IsNegative() {
		return fmt.Errorf("trade record %s has negative price %s", r.Symbol, r.Price)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("trade record %s has no trade date", r.Symbol)
	}
	return nil
}
