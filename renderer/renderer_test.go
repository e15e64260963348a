package renderer

import (
	"strings"
	"testing"
	"time"

	portfolio "github.com/RD191295/Portfolio-Analytics"
)

func testLots(t *testing.T) ([]portfolio.ValuedLot, portfolio.Date) {
	t.Helper()
	tb := portfolio.NewTradebook()
	err := tb.Append(
		portfolio.TradeRecord{
			Symbol: "TCS", ISIN: "INE467B01029", Side: portfolio.Buy,
			Quantity: portfolio.Q(100), Price: portfolio.M(3500, "INR"),
			Date: portfolio.NewDate(2024, time.January, 5),
		},
		portfolio.TradeRecord{
			Symbol: "TCS", ISIN: "INE467B01029", Side: portfolio.Sell,
			Quantity: portfolio.Q(40), Price: portfolio.M(3700, "INR"),
			Date: portfolio.NewDate(2024, time.February, 5),
		},
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	asOf := portfolio.NewDate(2024, time.June, 1)
	valued, err := tb.Positions(asOf, portfolio.DefaultMarketSuffix)
	if err != nil {
		t.Fatalf("Positions() error = %v", err)
	}
	return valued, asOf
}

func TestLotsMarkdown(t *testing.T) {
	valued, asOf := testLots(t)
	lots := make([]portfolio.MatchedLot, 0, len(valued))
	for _, v := range valued {
		lots = append(lots, v.MatchedLot)
	}

	md := LotsMarkdown(lots, asOf)
	if !strings.Contains(md, "# Matched Lots as of 2024-06-01") {
		t.Errorf("missing title:\n%s", md)
	}
	if !strings.Contains(md, "| TCS | INE467B01029 |") {
		t.Errorf("missing lot row:\n%s", md)
	}
	if !strings.Contains(md, "| open | - |") {
		t.Errorf("open lot not marked open:\n%s", md)
	}
}

func TestPositionsMarkdown(t *testing.T) {
	valued, asOf := testLots(t)

	md := PositionsMarkdown(valued, asOf)
	if !strings.Contains(md, "| TCS.NS |") {
		t.Errorf("missing ticker row:\n%s", md)
	}
	if !strings.Contains(md, "**100.00%**") {
		t.Errorf("weights total should render as 100.00%%:\n%s", md)
	}
}

func TestMarkdownReporter(t *testing.T) {
	valued, _ := testLots(t)
	spec, err := portfolio.NewReportSpec(valued)
	if err != nil {
		t.Fatalf("NewReportSpec() error = %v", err)
	}

	var b strings.Builder
	if err := (Markdown{}).Render(&b, spec, valued); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "# Report Specification") || !strings.Contains(out, "| TCS.NS |") {
		t.Errorf("report output incomplete:\n%s", out)
	}
	if !strings.Contains(out, "2024-01-05 to 2024-06-01") {
		t.Errorf("report period wrong:\n%s", out)
	}
}
