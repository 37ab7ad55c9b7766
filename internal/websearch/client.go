package websearch

import (
	"context"
	"fmt"
	"strings"
)

// Result is a single search hit.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// QueryResults groups the hits for one query.
type QueryResults struct {
	Query   string   `json:"query"`
	Results []Result `json:"results"`
}

// Searcher answers generic search queries.
type Searcher interface {
	Search(ctx context.Context, queries []string) ([]QueryResults, error)
}

// StaticSearcher is a canned search implementation. The assistant only uses
// generic search to resolve ambiguity (typically date questions), so a
// deterministic stand-in keeps the tool surface complete without another
// external dependency.
type StaticSearcher struct{}

// NewStaticSearcher creates a new canned searcher.
func NewStaticSearcher() *StaticSearcher {
	return &StaticSearcher{}
}

// Search returns one canned result per query, with a date-aware variant for
// queries that mention dates.
func (s *StaticSearcher) Search(ctx context.Context, queries []string) ([]QueryResults, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]QueryResults, 0, len(queries))
	for _, query := range queries {
		lower := strings.ToLower(query)
		if strings.Contains(lower, "date") || strings.Contains(lower, "time") {
			out = append(out, QueryResults{
				Query: query,
				Results: []Result{{
					Title:   "Date lookup",
					Snippet: fmt.Sprintf("Use the assistant's current date context to answer %q.", query),
				}},
			})
			continue
		}
		out = append(out, QueryResults{
			Query: query,
			Results: []Result{{
				Title:   "Search result",
				Snippet: fmt.Sprintf("No live search backend is configured; query was %q.", query),
			}},
		})
	}
	return out, nil
}
