package portfolio

import (
	"io"
	"slices"
)

// ReportSpec is everything an external reporting collaborator needs to fetch
// return series and render a comparison report: the distinct tickers held and
// the date range their lots span.
//
// The range runs from the earliest buy date to the latest sell date; open
// lots already carry the matcher's as-of date as their sell date, so "still
// held" naturally extends the range to now.
type ReportSpec struct {
	Tickers []string // sorted, unique
	Range   Range    // earliest buy to latest sell
}

// NewReportSpec derives the report specification from a valued lot set.
func NewReportSpec(lots []ValuedLot) (ReportSpec, error) {
	if len(lots) == 0 {
		return ReportSpec{}, ErrEmptyPortfolio
	}

	var tickers []string
	from, to := lots[0].BuyDate, lots[0].SellDate
	for _, lot := range lots {
		if !slices.Contains(tickers, lot.Ticker) {
			tickers = append(tickers, lot.Ticker)
		}
		if lot.BuyDate.Before(from) {
			from = lot.BuyDate
		}
		if lot.SellDate.After(to) {
			to = lot.SellDate
		}
	}
	slices.Sort(tickers)

	return ReportSpec{Tickers: tickers, Range: NewRange(from, to)}, nil
}

// Reporter renders a valued lot set. Implementations live outside the engine;
// the engine only promises the fields a report needs.
type Reporter interface {
	Render(w io.Writer, spec ReportSpec, lots []ValuedLot) error
}
