package places_tools

import (
	"context"

	"github.com/pmalik/teamdinner/internal/memory"
	"github.com/pmalik/teamdinner/internal/places"
	"github.com/pmalik/teamdinner/internal/tools"
)

// RestaurantFinder is the places capability the tool needs. *places.Client
// implements it; tests substitute fakes.
type RestaurantFinder interface {
	SearchRestaurants(ctx context.Context, cuisine, location string, maxResults int) ([]places.Restaurant, error)
}

// RegisterPlacesTools registers the restaurant search tool. Successful
// searches overwrite the found-restaurants cache wholesale.
func RegisterPlacesTools(r *tools.Registry, finder RestaurantFinder, cache *memory.Store) {
	r.Register(tools.Descriptor{
		Name:        "search_restaurants",
		Description: "Search for restaurants of a given cuisine near a location.",
		Params: []tools.Param{
			{Name: "cuisine", Type: tools.TypeString, Description: "Cuisine to search for (e.g. 'Italian', 'Hyderabadi Biryani').", Required: true},
			{Name: "location", Type: tools.TypeString, Description: "Neighborhood or city to search in.", Required: true},
			{Name: "max_results", Type: tools.TypeInteger, Description: "Maximum number of restaurants to return.", Default: 3},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		return handleSearchRestaurants(ctx, args, finder, cache)
	})
}

func handleSearchRestaurants(ctx context.Context, args map[string]any, finder RestaurantFinder, cache *memory.Store) (any, error) {
	cuisine, err := tools.StringArg(args, "cuisine")
	if err != nil {
		return nil, err
	}
	location, err := tools.StringArg(args, "location")
	if err != nil {
		return nil, err
	}
	maxResults, err := tools.IntArg(args, "max_results")
	if err != nil {
		return nil, err
	}

	restaurants, err := finder.SearchRestaurants(ctx, cuisine, location, maxResults)
	if err != nil {
		return nil, err
	}

	cache.Update(memory.KeyFoundRestaurants, restaurants)
	return restaurants, nil
}
