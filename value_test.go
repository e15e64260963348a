package portfolio

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func closed(symbol string, qty int, buyPrice float64) MatchedLot {
	return MatchedLot{
		Symbol:    symbol,
		ISIN:      "ISIN-" + symbol,
		Quantity:  Q(qty),
		BuyDate:   NewDate(2024, time.January, 5),
		SellDate:  NewDate(2024, time.February, 5),
		BuyPrice:  M(buyPrice, "INR"),
		SellPrice: M(buyPrice+1, "INR"),
	}
}

func TestValue_NotionalAndWeights(t *testing.T) {
	lots := []MatchedLot{
		closed("TCS", 10, 100),  // notional 1000
		closed("INFY", 30, 100), // notional 3000
	}

	valued, err := Value(lots, DefaultMarketSuffix)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if len(valued) != 2 {
		t.Fatalf("Value() returned %d lots, want 2", len(valued))
	}

	if !valued[0].Notional.Equal(M(1000, "INR")) {
		t.Errorf("TCS notional = %s, want 1000", valued[0].Notional)
	}
	if !valued[0].Weight.Equal(Percent(25)) {
		t.Errorf("TCS weight = %s, want 25%%", valued[0].Weight)
	}
	if !valued[1].Weight.Equal(Percent(75)) {
		t.Errorf("INFY weight = %s, want 75%%", valued[1].Weight)
	}
}

func TestValue_AppendsMarketSuffix(t *testing.T) {
	valued, err := Value([]MatchedLot{closed("TCS", 10, 100)}, DefaultMarketSuffix)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if valued[0].Ticker != "TCS.NS" {
		t.Errorf("ticker = %q, want %q", valued[0].Ticker, "TCS.NS")
	}
}

func TestValue_EmptyLotSet(t *testing.T) {
	_, err := Value(nil, DefaultMarketSuffix)
	if !errors.Is(err, ErrEmptyPortfolio) {
		t.Fatalf("Value(nil) error = %v, want ErrEmptyPortfolio", err)
	}
}

func TestValue_ZeroTotalNotional(t *testing.T) {
	// a lot set is not enough: it must carry invested notional
	lots := []MatchedLot{closed("TCS", 10, 0)}
	_, err := Value(lots, DefaultMarketSuffix)
	if !errors.Is(err, ErrEmptyPortfolio) {
		t.Fatalf("Value() error = %v, want ErrEmptyPortfolio", err)
	}
}

func TestValuedLot_ExportsWeightInPercentPoints(t *testing.T) {
	lots := []MatchedLot{
		closed("TCS", 10, 100),  // a quarter of the book
		closed("INFY", 30, 100), // three quarters
	}
	valued, err := Value(lots, DefaultMarketSuffix)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	data, err := valued[0].MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if !strings.Contains(string(data), `"weight":25`) {
		t.Errorf("exported weight is not in percent points: %s", data)
	}
}

func TestValue_WeightsSumToHundred(t *testing.T) {
	lots := []MatchedLot{
		closed("TCS", 7, 333),
		closed("INFY", 13, 77),
		closed("HDFC", 3, 1234),
	}
	valued, err := Value(lots, DefaultMarketSuffix)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var sum Percent
	for _, v := range valued {
		sum += v.Weight
	}
	if !sum.Equal(Percent(100)) {
		t.Errorf("weights sum to %s, want 100%%", sum)
	}
}
