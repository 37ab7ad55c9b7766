// Package websearch provides the generic search collaborator behind the
// generic_search tool. The default implementation returns canned results;
// the Searcher interface is the seam for a real backend.
package websearch
