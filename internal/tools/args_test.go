package tools

import (
	"testing"
	"time"
)

func TestStringArg(t *testing.T) {
	args := map[string]any{"cuisine": "Italian", "count": 3}

	if got, err := StringArg(args, "cuisine"); err != nil || got != "Italian" {
		t.Errorf("StringArg = %q, %v", got, err)
	}
	if _, err := StringArg(args, "missing"); err == nil {
		t.Error("expected error for missing key")
	}
	if _, err := StringArg(args, "count"); err == nil {
		t.Error("expected error for mistyped value")
	}
}

func TestOptionalStringArg(t *testing.T) {
	args := map[string]any{"description": "Dinner!"}

	if got, _ := OptionalStringArg(args, "description", "fallback"); got != "Dinner!" {
		t.Errorf("got %q", got)
	}
	if got, _ := OptionalStringArg(args, "absent", "fallback"); got != "fallback" {
		t.Errorf("got %q, want fallback", got)
	}
	if _, err := OptionalStringArg(map[string]any{"x": 1}, "x", "fallback"); err == nil {
		t.Error("expected error for mistyped value")
	}
}

func TestStringSliceArg(t *testing.T) {
	args := map[string]any{
		"typed": []string{"a@x.com", "b@x.com"},
		"json":  []any{"a@x.com", "b@x.com"},
		"mixed": []any{"a@x.com", 7},
		"plain": "a@x.com",
	}

	for _, key := range []string{"typed", "json"} {
		got, err := StringSliceArg(args, key)
		if err != nil {
			t.Fatalf("StringSliceArg(%q) error: %v", key, err)
		}
		if len(got) != 2 || got[0] != "a@x.com" {
			t.Errorf("StringSliceArg(%q) = %v", key, got)
		}
	}
	if _, err := StringSliceArg(args, "mixed"); err == nil {
		t.Error("expected error for mixed element types")
	}
	if _, err := StringSliceArg(args, "plain"); err == nil {
		t.Error("expected error for non-list value")
	}
	if _, err := StringSliceArg(args, "missing"); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestIntArg(t *testing.T) {
	args := map[string]any{"a": 120, "b": float64(90), "c": "nope"}

	if got, err := IntArg(args, "a"); err != nil || got != 120 {
		t.Errorf("IntArg(a) = %d, %v", got, err)
	}
	if got, err := IntArg(args, "b"); err != nil || got != 90 {
		t.Errorf("IntArg(b) = %d, %v", got, err)
	}
	if _, err := IntArg(args, "c"); err == nil {
		t.Error("expected error for mistyped value")
	}
	if _, err := IntArg(args, "missing"); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestTimeArg(t *testing.T) {
	now := time.Now()
	args := map[string]any{"when": now, "text": "later"}

	if got, err := TimeArg(args, "when"); err != nil || !got.Equal(now) {
		t.Errorf("TimeArg = %v, %v", got, err)
	}
	if _, err := TimeArg(args, "text"); err == nil {
		t.Error("expected error for unresolved string")
	}
	if _, err := TimeArg(args, "missing"); err == nil {
		t.Error("expected error for missing key")
	}
}
