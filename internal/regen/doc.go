// Package regen orchestrates a full regeneration run.
//
// A run holds an exclusive file lock, loads the catalog manifest once, then
// produces the requested outputs: translation artifacts (one per configured
// language), the contributor credits document, and go-i18n message catalogs.
// The runner owns no merge or rendering logic; it sequences the catalog,
// overrides, transgen, credits, and export packages and collects per-output
// outcomes into a Summary.
//
// Failure handling follows a fixed ladder. A catalog that cannot be loaded or
// a lock already held aborts the run. A language whose artifact is missing,
// unparsable, or lacks the generated-region markers is skipped and reported;
// the run continues. History recording is best-effort and never fails a run.
package regen
