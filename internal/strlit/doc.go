// Package strlit escapes arbitrary text into the body of a double-quoted Go
// string literal and back.
//
// Every string value placed into a generated translation entry (question text,
// module overrides, answer and argument literals) runs through Escape so the
// emitted file always parses, even when catalog text carries control characters
// or bytes that are not valid UTF-8. Unescape is the exact inverse; the pair
// round-trips any byte sequence.
package strlit
