// Package places provides a client for the Google Places Text Search API,
// used by the restaurant search tool.
//
// The client degrades gracefully: when no API key is configured or the API
// is unreachable it returns a simulated restaurant list, clearly flagged in
// the restaurant names, instead of surfacing an error to the conversation.
package places
