// Package portfolio reconciles a tradebook of buy/sell executions into
// matched round-trip lots and values them as portfolio positions.
//
// The pipeline has three pure stages:
//   - Aggregate condenses raw executions into one summary per instrument and
//     side (total quantity, representative date, mean price).
//   - Match pairs buy summaries with sell summaries, oldest first, splitting
//     partially covered quantities; bought quantity with no matching sell
//     becomes an open lot stamped with an injected as-of date.
//   - Value turns lots into positions: market ticker, invested notional, and
//     each lot's weight in the total invested notional.
//
// The package also decodes broker tradebook CSV exports and derives the
// report specification (tickers and date range) that an external reporting
// collaborator needs. Fetching prices or return series and rendering
// analytics reports are deliberately outside this package.
//
// This package is the foundational logic for the `pan` command-line tool.
package portfolio
