package portfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// tradebookColumns are the six required columns of a tradebook CSV, in the
// canonical order used when re-encoding. Broker exports carry extra columns
// (exchange, order ids, ...); those are ignored on read.
var tradebookColumns = []string{"symbol", "isin", "trade_type", "quantity", "price", "trade_date"}

// DecodeTradebook reads a tradebook CSV from r.
//
// The first row is the header; columns are located by name so the column
// order and any extra columns do not matter. Every row must provide the six
// required fields well-typed, prices are read in the given currency, and the
// first malformed row fails the whole decode with its row number.
func DecodeTradebook(r io.Reader, currency string) (*Tradebook, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read tradebook header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range tradebookColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("tradebook header is missing column %q", name)
		}
	}

	tb := NewTradebook()
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tradebook row %d: %w", row, err)
		}

		record, err := decodeTradeRecord(fields, columns, currency)
		if err != nil {
			return nil, fmt.Errorf("tradebook row %d: %w", row, err)
		}
		if err := tb.Append(record); err != nil {
			return nil, fmt.Errorf("tradebook row %d: %w", row, err)
		}
	}
	return tb, nil
}

func decodeTradeRecord(fields []string, columns map[string]int, currency string) (TradeRecord, error) {
	cell := func(name string) string { return strings.TrimSpace(fields[columns[name]]) }

	side, err := ParseSide(cell("trade_type"))
	if err != nil {
		return TradeRecord{}, err
	}
	quantity, err := ParseQuantity(cell("quantity"))
	if err != nil {
		return TradeRecord{}, fmt.Errorf("invalid quantity %q: %w", cell("quantity"), err)
	}
	price, err := ParseMoney(cell("price"), currency)
	if err != nil {
		return TradeRecord{}, fmt.Errorf("invalid price %q: %w", cell("price"), err)
	}
	date, err := ParseDate(cell("trade_date"))
	if err != nil {
		return TradeRecord{}, err
	}

	return TradeRecord{
		Symbol:   cell("symbol"),
		ISIN:     cell("isin"),
		Side:     side,
		Quantity: quantity,
		Price:    price,
		Date:     date,
	}, nil
}

// EncodeTradebook writes the book back as a canonical CSV: the six required
// columns only, rows sorted by date then symbol, isin and side.
func EncodeTradebook(w io.Writer, tb *Tradebook) error {
	records := tb.Records()
	slices.SortFunc(records, func(a, b TradeRecord) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if c := strings.Compare(a.Symbol, b.Symbol); c != 0 {
			return c
		}
		if c := strings.Compare(a.ISIN, b.ISIN); c != 0 {
			return c
		}
		return strings.Compare(string(a.Side), string(b.Side))
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(tradebookColumns); err != nil {
		return fmt.Errorf("cannot write tradebook header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Symbol,
			r.ISIN,
			string(r.Side),
			r.Quantity.String(),
			r.Price.Amount().String(),
			r.Date.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write tradebook row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeLots exports valued lots as JSONL, one lot per line, with a stable
// field order so exports are diffable.
func EncodeLots(w io.Writer, lots []ValuedLot) error {
	for _, lot := range lots {
		data, err := lot.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal lot %s: %w", lot.Ticker, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write lot: %w", err)
		}
	}
	return nil
}
