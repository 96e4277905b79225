// Package catalog defines the canonical question data model and loads the
// module catalog manifest.
//
// The manifest is the externally produced snapshot of every Souvenir question:
// one JSON document listing supported bomb modules (with their implementing
// contributor) and question specifications in declaration order. The catalog is
// read exactly once per run and treated as immutable afterwards; declaration
// order is significant and flows through to all generated artifacts.
//
// A manifest that cannot be read or fails validation aborts the entire run, so
// Load wraps every failure in a LoadError.
package catalog
