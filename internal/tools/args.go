package tools

import (
	"fmt"
	"time"
)

// Typed accessors for normalized argument maps. Handlers use these instead of
// open-coded type assertions so missing and mistyped arguments produce
// uniform error messages.

// StringArg returns the string argument under key.
func StringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string, got %T", key, v)
	}
	return s, nil
}

// OptionalStringArg returns the string argument under key, or fallback when
// the key is absent.
func OptionalStringArg(args map[string]any, key, fallback string) (string, error) {
	if _, ok := args[key]; !ok {
		return fallback, nil
	}
	return StringArg(args, key)
}

// StringSliceArg returns the list-of-strings argument under key. JSON arrays
// arrive as []any; both that and []string are accepted.
func StringSliceArg(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("missing required argument %q", key)
	}
	switch vv := v.(type) {
	case []string:
		return vv, nil
	case []any:
		out := make([]string, 0, len(vv))
		for i, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("argument %q element %d must be a string, got %T", key, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("argument %q must be a list of strings, got %T", key, v)
	}
}

// IntArg returns the integer argument under key. Normalization has already
// truncated JSON floats, but raw ints and floats are still tolerated.
func IntArg(args map[string]any, key string) (int, error) {
	v, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing required argument %q", key)
	}
	switch vv := v.(type) {
	case int:
		return vv, nil
	case float64:
		return int(vv), nil
	default:
		return 0, fmt.Errorf("argument %q must be an integer, got %T", key, v)
	}
}

// TimeArg returns the time.Time argument under key, as produced by datetime
// normalization.
func TimeArg(args map[string]any, key string) (time.Time, error) {
	v, ok := args[key]
	if !ok {
		return time.Time{}, fmt.Errorf("missing required argument %q", key)
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("argument %q must be a datetime, got %T", key, v)
	}
	return t, nil
}
