package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pmalik/teamdinner/internal/logging"
)

// defaultBaseURL is the Places Text Search endpoint.
const defaultBaseURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"

// defaultTimeout bounds a single search request.
const defaultTimeout = 10 * time.Second

// Client searches for restaurants via the Google Places Text Search API.
// Without an API key every search falls back to simulated data so the
// assistant stays usable in demos and tests.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger sets the client's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a new Places client. An empty apiKey is allowed; searches
// will then return simulated results.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchRestaurants looks up restaurants matching a cuisine near a location.
// On missing API key, transport failure, API error status, or an empty result
// set it returns the simulated fallback list instead of failing, mirroring
// the graceful degradation the assistant promises.
func (c *Client) SearchRestaurants(ctx context.Context, cuisine, location string, maxResults int) ([]Restaurant, error) {
	if maxResults <= 0 {
		maxResults = 3
	}

	if c.apiKey == "" {
		c.logger.Info("places API key not set, returning simulated restaurants",
			logging.Operation("textsearch"))
		return simulatedRestaurants(), nil
	}

	found, err := c.textSearch(ctx, cuisine, location, maxResults)
	if err != nil {
		c.logger.Warn("restaurant search failed, returning simulated restaurants",
			logging.Operation("textsearch"), logging.Err(err))
		return simulatedRestaurants(), nil
	}
	if len(found) == 0 {
		c.logger.Info("restaurant search returned no results, returning simulated restaurants",
			logging.Operation("textsearch"))
		return simulatedRestaurants(), nil
	}
	return found, nil
}

// textSearch performs the actual API call.
func (c *Client) textSearch(ctx context.Context, cuisine, location string, maxResults int) ([]Restaurant, error) {
	query := fmt.Sprintf("%s restaurants in %s", cuisine, location)

	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)
	params.Set("type", "restaurant")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &PlacesError{Op: "textsearch", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &PlacesError{Op: "textsearch", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &PlacesError{Op: "textsearch", Err: fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)}
	}

	var body textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &PlacesError{Op: "textsearch", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if body.Status != "OK" {
		return nil, &PlacesError{
			Op:     "textsearch",
			Status: body.Status,
			Err:    fmt.Errorf("%s", body.ErrorMessage),
		}
	}

	restaurants := make([]Restaurant, 0, maxResults)
	for _, place := range body.Results {
		if len(restaurants) >= maxResults {
			break
		}

		rating := "N/A"
		if place.Rating > 0 {
			rating = strconv.FormatFloat(place.Rating, 'f', 1, 64)
		}

		hint := cuisineHint(place.Types)
		if hint == "" {
			hint = cuisine
		}

		restaurants = append(restaurants, Restaurant{
			Name:    place.Name,
			Address: place.FormattedAddress,
			Rating:  rating,
			Cuisine: hint,
		})
	}

	return restaurants, nil
}

// cuisineHint derives a readable cuisine description from the place types,
// e.g. ["meal_takeaway", "restaurant"] -> "Meal Takeaway, Restaurant".
func cuisineHint(types []string) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		words := strings.Split(strings.ReplaceAll(t, "_", " "), " ")
		for i, w := range words {
			if w == "" {
				continue
			}
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
		parts = append(parts, strings.Join(words, " "))
	}
	return strings.Join(parts, ", ")
}

// simulatedRestaurants is the predefined fallback list returned when the real
// API is unavailable.
func simulatedRestaurants() []Restaurant {
	return []Restaurant{
		{Name: "Paradise Biryani (Simulated)", Address: "Gachibowli, Hyderabad", Rating: "4.1", Cuisine: "Hyderabadi"},
		{Name: "Bawarchi (Simulated)", Address: "RTC Cross Roads, Hyderabad", Rating: "4.3", Cuisine: "Indian"},
		{Name: "Sarvi (Simulated)", Address: "Banjara Hills, Hyderabad", Rating: "4.0", Cuisine: "Multi-Cuisine"},
	}
}
