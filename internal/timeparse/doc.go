// Package timeparse resolves natural-language date/time phrases into
// absolute, timezone-aware instants.
//
// The language model is instructed to pass dates as natural language
// ("next Tuesday at 7pm", "tomorrow"), so tool arguments arrive as loose
// strings. Resolve anchors relative phrases on a reference instant, prefers
// future-dated interpretations when the year is ambiguous, and falls back to
// a deterministic rule for the "next <weekday> at <hour>" shape. When nothing
// matches it fails loudly with an UnparseableError rather than guessing.
package timeparse
