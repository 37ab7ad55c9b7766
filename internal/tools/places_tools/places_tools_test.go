package places_tools

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pmalik/teamdinner/internal/memory"
	"github.com/pmalik/teamdinner/internal/places"
	"github.com/pmalik/teamdinner/internal/tools"
)

type fakeFinder struct {
	restaurants []places.Restaurant
	err         error

	gotCuisine  string
	gotLocation string
	gotMax      int
}

func (f *fakeFinder) SearchRestaurants(ctx context.Context, cuisine, location string, maxResults int) ([]places.Restaurant, error) {
	f.gotCuisine = cuisine
	f.gotLocation = location
	f.gotMax = maxResults
	return f.restaurants, f.err
}

func newFixture(t *testing.T, fake *fakeFinder) (*tools.Registry, *memory.Store) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	r := tools.NewRegistry(loc)
	cache := memory.NewStore()
	RegisterPlacesTools(r, fake, cache)
	return r, cache
}

func TestSearchRestaurants(t *testing.T) {
	fake := &fakeFinder{restaurants: []places.Restaurant{
		{Name: "Paradise Biryani", Address: "Hitech City", Rating: "4.4", Cuisine: "Biryani"},
	}}
	r, cache := newFixture(t, fake)

	result := r.Invoke(context.Background(), "search_restaurants", map[string]any{
		"cuisine":  "Biryani",
		"location": "Hyderabad",
	})
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}

	if fake.gotCuisine != "Biryani" || fake.gotLocation != "Hyderabad" {
		t.Errorf("args = %q, %q", fake.gotCuisine, fake.gotLocation)
	}
	if fake.gotMax != 3 {
		t.Errorf("max_results = %d, want default 3", fake.gotMax)
	}

	payload, ok := result.Payload.([]any)
	if !ok || len(payload) != 1 {
		t.Fatalf("payload = %#v", result.Payload)
	}
	first := payload[0].(map[string]any)
	if first["name"] != "Paradise Biryani" {
		t.Errorf("name = %v", first["name"])
	}

	cached, ok := cache.Get(memory.KeyFoundRestaurants).([]places.Restaurant)
	if !ok || len(cached) != 1 {
		t.Errorf("cache = %#v", cache.Get(memory.KeyFoundRestaurants))
	}
}

func TestSearchRestaurantsMaxResultsTruncated(t *testing.T) {
	fake := &fakeFinder{}
	r, _ := newFixture(t, fake)

	result := r.Invoke(context.Background(), "search_restaurants", map[string]any{
		"cuisine":     "Thai",
		"location":    "midtown",
		"max_results": float64(5.7),
	})
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if fake.gotMax != 5 {
		t.Errorf("max_results = %d, want truncated 5", fake.gotMax)
	}
}

func TestSearchRestaurantsMissingArgs(t *testing.T) {
	r, _ := newFixture(t, &fakeFinder{})

	result := r.Invoke(context.Background(), "search_restaurants", map[string]any{
		"cuisine": "Thai",
	})
	if result.Err == nil {
		t.Fatal("expected error for missing location")
	}
}

func TestSearchRestaurantsUpstreamError(t *testing.T) {
	fake := &fakeFinder{err: errors.New("places unavailable")}
	r, cache := newFixture(t, fake)

	result := r.Invoke(context.Background(), "search_restaurants", map[string]any{
		"cuisine":  "Thai",
		"location": "midtown",
	})
	if result.Err == nil || result.Err.Kind != tools.KindExecution {
		t.Fatalf("result.Err = %v, want execution error", result.Err)
	}
	if cache.Get(memory.KeyFoundRestaurants) != nil {
		t.Error("failed search must not touch the cache")
	}
}
