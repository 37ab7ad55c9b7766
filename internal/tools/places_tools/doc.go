// Package places_tools registers the restaurant search tool backed by the
// Google Places text search API.
package places_tools
