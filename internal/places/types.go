package places

import "fmt"

// Restaurant represents a restaurant returned by a place search.
type Restaurant struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Rating  string `json:"rating"`
	Cuisine string `json:"cuisine"`
}

// PlacesError represents an error that occurred during a place search.
type PlacesError struct {
	// Op is the operation that failed (e.g., "textsearch")
	Op string

	// Status is the API status string, if the API answered at all
	Status string

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *PlacesError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("places %s: status %s: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("places %s: %v", e.Op, e.Err)
}

// Unwrap implements the errors.Unwrap interface.
func (e *PlacesError) Unwrap() error {
	return e.Err
}

// textSearchResponse mirrors the fields of the Places Text Search API
// response the client consumes.
type textSearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Rating           float64  `json:"rating"`
		Types            []string `json:"types"`
	} `json:"results"`
}
