package tools

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testClock() func() time.Time {
	// Monday, July 14 2025, 10:00 IST.
	loc, _ := time.LoadLocation("Asia/Kolkata")
	ref := time.Date(2025, time.July, 14, 10, 0, 0, 0, loc)
	return func() time.Time { return ref }
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return NewRegistry(loc, WithClock(testClock()))
}

func TestInvokeUnknownTool(t *testing.T) {
	r := newTestRegistry(t)

	result := r.Invoke(context.Background(), "does_not_exist", nil)
	if result.Err == nil {
		t.Fatal("expected error for unknown tool")
	}
	if result.Err.Kind != KindNotFound {
		t.Errorf("kind = %q, want %q", result.Err.Kind, KindNotFound)
	}
	if result.Err.Message != "Tool 'does_not_exist' not found." {
		t.Errorf("message = %q", result.Err.Message)
	}
	if got := result.Response(); got["error"] != "Tool 'does_not_exist' not found." {
		t.Errorf("response = %v", got)
	}
}

func TestInvokeSuccessWrapsResult(t *testing.T) {
	r := newTestRegistry(t)
	r.Register(Descriptor{
		Name:   "echo",
		Params: []Param{{Name: "text", Type: TypeString, Required: true}},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		s, err := StringArg(args, "text")
		if err != nil {
			return nil, err
		}
		return map[string]any{"echoed": s}, nil
	})

	result := r.Invoke(context.Background(), "echo", map[string]any{"text": "hello"})
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	resp := result.Response()
	inner, ok := resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("response result = %T, want map", resp["result"])
	}
	if inner["echoed"] != "hello" {
		t.Errorf("echoed = %v", inner["echoed"])
	}
}

func TestInvokeHandlerErrorBecomesPayload(t *testing.T) {
	r := newTestRegistry(t)
	r.Register(Descriptor{Name: "broken"}, func(ctx context.Context, args map[string]any) (any, error) {
		return nil, errors.New("upstream exploded")
	})

	result := r.Invoke(context.Background(), "broken", nil)
	if result.Err == nil || result.Err.Kind != KindExecution {
		t.Fatalf("result.Err = %v, want execution error", result.Err)
	}
	if got := result.Response()["error"]; got != "upstream exploded" {
		t.Errorf("error payload = %v", got)
	}
}

func TestInvokeHandlerPanicIsRecovered(t *testing.T) {
	r := newTestRegistry(t)
	r.Register(Descriptor{Name: "panicky"}, func(ctx context.Context, args map[string]any) (any, error) {
		panic("boom")
	})

	result := r.Invoke(context.Background(), "panicky", nil)
	if result.Err == nil || result.Err.Kind != KindExecution {
		t.Fatalf("result.Err = %v, want execution error", result.Err)
	}
}

func TestInvokeAppliesDefaults(t *testing.T) {
	r := newTestRegistry(t)
	var seen map[string]any
	r.Register(Descriptor{
		Name: "with_default",
		Params: []Param{
			{Name: "max_results", Type: TypeInteger, Default: 3},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		seen = args
		return "ok", nil
	})

	r.Invoke(context.Background(), "with_default", map[string]any{})
	if seen["max_results"] != 3 {
		t.Errorf("max_results = %v, want default 3", seen["max_results"])
	}

	r.Invoke(context.Background(), "with_default", map[string]any{"max_results": float64(5)})
	if seen["max_results"] != 5 {
		t.Errorf("max_results = %v, want 5", seen["max_results"])
	}
}

func TestInvokeResolvesDatetimeAlias(t *testing.T) {
	r := newTestRegistry(t)
	var seen map[string]any
	r.Register(Descriptor{
		Name: "schedule",
		Params: []Param{
			{Name: "search_start_dt", Type: TypeDatetime, Required: true},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		seen = args
		return "ok", nil
	})

	result := r.Invoke(context.Background(), "schedule", map[string]any{
		"search_start_dt_str": "next Tuesday at 7pm",
	})
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if _, aliasLeft := seen["search_start_dt_str"]; aliasLeft {
		t.Error("alias key should be removed after resolution")
	}
	got, ok := seen["search_start_dt"].(time.Time)
	if !ok {
		t.Fatalf("search_start_dt = %T, want time.Time", seen["search_start_dt"])
	}
	if got.Weekday() != time.Tuesday || got.Hour() != 19 {
		t.Errorf("resolved = %v, want a Tuesday at 19:00", got)
	}
}

func TestInvokeUnparseableDatetime(t *testing.T) {
	r := newTestRegistry(t)
	called := false
	r.Register(Descriptor{
		Name: "schedule",
		Params: []Param{
			{Name: "search_start_dt", Type: TypeDatetime, Required: true},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		called = true
		return "ok", nil
	})

	result := r.Invoke(context.Background(), "schedule", map[string]any{
		"search_start_dt_str": "whenever feels right",
	})
	if result.Err == nil || result.Err.Kind != KindUnparseable {
		t.Fatalf("result.Err = %v, want unparseable error", result.Err)
	}
	if called {
		t.Error("handler must not run when normalization fails")
	}
}

func TestDescriptorsPreserveRegistrationOrder(t *testing.T) {
	r := newTestRegistry(t)
	noop := func(ctx context.Context, args map[string]any) (any, error) { return nil, nil }
	r.Register(Descriptor{Name: "b"}, noop)
	r.Register(Descriptor{Name: "a"}, noop)
	r.Register(Descriptor{Name: "c"}, noop)
	// Re-registration keeps the original slot.
	r.Register(Descriptor{Name: "a"}, noop)

	descs := r.Descriptors()
	want := []string{"b", "a", "c"}
	if len(descs) != len(want) {
		t.Fatalf("got %d descriptors, want %d", len(descs), len(want))
	}
	for i, name := range want {
		if descs[i].Name != name {
			t.Errorf("descriptor %d = %q, want %q", i, descs[i].Name, name)
		}
	}
}

func TestInvokeSanitizesTimeValues(t *testing.T) {
	r := newTestRegistry(t)
	loc, _ := time.LoadLocation("Asia/Kolkata")
	r.Register(Descriptor{Name: "times"}, func(ctx context.Context, args map[string]any) (any, error) {
		return map[string]any{
			"start": time.Date(2025, time.July, 15, 19, 0, 0, 0, loc),
		}, nil
	})

	result := r.Invoke(context.Background(), "times", nil)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	payload, ok := result.Payload.(map[string]any)
	if !ok {
		t.Fatalf("payload = %T, want map", result.Payload)
	}
	s, ok := payload["start"].(string)
	if !ok {
		t.Fatalf("start = %T, want string", payload["start"])
	}
	if s != "2025-07-15T19:00:00+05:30" {
		t.Errorf("start = %q, want RFC 3339 with IST offset", s)
	}
}
