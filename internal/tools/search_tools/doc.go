// Package search_tools registers the generic web search tool.
package search_tools
