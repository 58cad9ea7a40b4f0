// Package compound projects how a lump sum plus periodic contributions grows
// under compound interest over a bounded number of years.
//
// The core is a stateless projection engine: Compute turns Params into a
// Result holding a year-by-year ledger and its summary totals. It has no I/O,
// keeps no state between calls and is safe to call concurrently.
//
// The rest of the package serves the collaborators of the engine:
//   - Value types: Money (exact decimal amounts in a display currency), Rate
//     (an annual rate as a fraction) and Frequency (occurrences per year).
//   - Structured errors: every validation failure is an *Error with a Kind.
//   - Views: SummaryFrom and SeriesFrom derive totals and aligned chart series
//     from an existing ledger without simulating again.
//   - Input adapter: Input parses untrusted string fields, as found in a web
//     form or on a command line, into Params.
//   - Encoding: results and series marshal to JSON with a stable key order.
//
// This package is the foundation of the `cip` command-line tool and of its
// HTTP server.
package compound
