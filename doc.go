// Package fbarcalc provides the core logic to compute the maximum value
// reached by a financial account over a sequence of transactions, for
// FBAR-style regulatory reporting.
//
// The core functionalities include:
//   - Balance Accumulation: ingesting an opening balance and a stream of
//     signed transaction deltas, truncated to cent precision, and tracking
//     the highest running total observed.
//   - Currency Support: a fixed table of supported currencies used both to
//     validate configuration and to drive the interactive selection prompt.
//   - Configuration: a small versioned TOML document (default input currency,
//     exchange-rate API key) persisted with owner-only permissions.
//   - Reporting: combining the native-currency maximum with a point-in-time
//     exchange rate into a dual-currency (native + USD) report.
//
// This package serves as the foundational logic for the `fbarcalc`
// command-line tool; the freecurrencyapi.com client lives in the
// freecurrency subpackage.
package fbarcalc
