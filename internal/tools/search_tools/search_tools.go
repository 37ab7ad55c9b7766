package search_tools

import (
	"context"

	"github.com/pmalik/teamdinner/internal/tools"
	"github.com/pmalik/teamdinner/internal/websearch"
)

// RegisterSearchTools registers the generic search tool the assistant uses to
// resolve ambiguity, typically date questions.
func RegisterSearchTools(r *tools.Registry, searcher websearch.Searcher) {
	r.Register(tools.Descriptor{
		Name:        "generic_search",
		Description: "Run one or more generic web search queries and return their results.",
		Params: []tools.Param{
			{Name: "queries", Type: tools.TypeStringArray, Description: "The search queries to run.", Required: true},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		queries, err := tools.StringSliceArg(args, "queries")
		if err != nil {
			return nil, err
		}
		return searcher.Search(ctx, queries)
	})
}
