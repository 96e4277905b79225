// Package logging assembles the structured slog loggers shared by the
// souvenirgen commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and defines the standardized attribute keys (component, language,
// run id) that keep regeneration runs greppable across log files. A no-op
// logger is provided for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits lines with the same shape.
package logging
