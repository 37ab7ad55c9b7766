// Package google provides OAuth2 authentication and token management for the
// Google Calendar API.
//
// Tokens are cached on disk under the user cache directory. The TokenProvider
// interface allows other token sources to be plugged in.
package google
