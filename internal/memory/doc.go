// Package memory provides a simple in-memory key-value store for state that
// lives no longer than a single assistant session, such as the last-seen
// available slots and restaurant search results.
package memory
