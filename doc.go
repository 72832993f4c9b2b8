// Package fairvalue provides the types and functions to maintain a small
// portfolio of dividend-paying stocks and to compute, for each of them, a
// fair-value estimate and margin-of-safety buy targets. It is designed to be
// local-first: the whole portfolio lives in a single human-readable JSON file
// that the user explicitly saves.
//
// The core functionalities include:
//   - Valuation Engine: a pure implementation of the Gordon Growth model
//     (dividend discount) deriving a fair price, three margin-of-safety
//     tiers, and board-lot position sizes from one stock's fundamentals and
//     its capital allocation.
//   - Portfolio Aggregate: an explicitly owned collection of equities plus
//     portfolio-level settings (total capital, target position count), with
//     edit operations that keep the price/dividend/yield triple consistent.
//   - Refresh Orchestration: per-row fetching of fundamentals from an
//     external provider, with row-scoped failures and a portfolio-wide
//     credential state.
//   - Data Persistence: atomic save and tolerant load of the full
//     (settings, stocks) snapshot.
//
// This package serves as the foundational logic for the `fav` command-line
// tool.
package fairvalue
