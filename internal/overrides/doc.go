// Package overrides recovers translator edits from a prior translation
// artifact.
//
// Translation artifacts are ordinary Go source files, so the reader parses the
// whole file with go/parser and walks the syntax tree instead of scraping text.
// The first package-level var initialized with a string-keyed map composite
// literal is taken as the translation table; each entry becomes a
// catalog.Override keyed by question id.
//
// Recovery is deliberately literal-minded: only values written as plain string
// literals (interpreted or raw) are picked up. An entry field built from
// concatenation, a constant, or a function call is ignored rather than guessed
// at, and the merge falls back to canonical text for it.
package overrides
