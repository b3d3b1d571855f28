// Package store provides durable storage for the evaluation history.
//
// The history is an append-only SQLite log: one row per computed symbol,
// ordered by a monotonic seq column. Recording is opt-in at the CLI level
// so plain invocations stay pure.
package store
