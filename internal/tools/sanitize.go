package tools

import "encoding/json"

// Sanitize converts an arbitrary tool output into a JSON-compatible tree of
// maps, slices, strings, float64s, bools and nils. time.Time values become
// RFC 3339 strings and struct tags are honored, so payloads survive being
// embedded in a model conversation and re-serialized losslessly.
func Sanitize(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
