// Package history persists regeneration run records in SQLite.
//
// Each run stores one row in runs plus one row per touched artifact in
// run_files. The store is best-effort by contract: callers log and move on
// when recording fails, so a broken history database never blocks a
// regeneration. Schema changes ship as embedded migrations applied on Open.
package history
