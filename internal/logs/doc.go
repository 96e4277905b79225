// Package logs reads back the regeneration log file for the CLI.
//
// It supports "last N lines" reads with bounded memory, resuming from a
// previously returned offset, and a polling follow mode for watching a run
// from another terminal. Callers supply context deadlines so follow mode
// shuts down cleanly when the CLI exits.
package logs
