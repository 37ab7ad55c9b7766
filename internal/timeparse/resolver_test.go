package timeparse

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	return loc
}

func TestResolveNextWeekdayGrid(t *testing.T) {
	loc := mustLoc(t)
	// Monday, July 21 2025, 10:00 local time.
	ref := time.Date(2025, time.July, 21, 10, 0, 0, 0, loc)

	weekdays := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	for _, wd := range weekdays {
		for _, tc := range []struct {
			hour     int
			ampm     string
			wantHour int
		}{
			{7, "pm", 19},
			{9, "am", 9},
			{12, "pm", 12},
			{12, "am", 0},
			{6, "", 6},
		} {
			input := fmt.Sprintf("next %s at %d%s", wd, tc.hour, tc.ampm)
			t.Run(input, func(t *testing.T) {
				got, err := Resolve(input, ref, loc)
				if err != nil {
					t.Fatalf("Resolve(%q) error: %v", input, err)
				}

				delta := got.Sub(ref)
				if delta <= 0 || delta > 7*24*time.Hour {
					t.Errorf("Resolve(%q) = %v, want within (0, 7d] of ref, got delta %v", input, got, delta)
				}
				wantDay, _ := parseWeekday(wd)
				if got.Weekday() != wantDay {
					t.Errorf("Resolve(%q) weekday = %v, want %v", input, got.Weekday(), wantDay)
				}
				if got.Hour() != tc.wantHour {
					t.Errorf("Resolve(%q) hour = %d, want %d", input, got.Hour(), tc.wantHour)
				}
				if got.Minute() != 0 || got.Second() != 0 {
					t.Errorf("Resolve(%q) = %v, want zero minutes and seconds", input, got)
				}
			})
		}
	}
}

func TestResolveNextWeekdayIsNeverToday(t *testing.T) {
	loc := mustLoc(t)
	// Ref is a Tuesday; "next Tuesday" must be a full week out.
	ref := time.Date(2025, time.July, 22, 9, 0, 0, 0, loc)

	got, err := Resolve("next Tuesday at 7pm", ref, loc)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	want := time.Date(2025, time.July, 29, 19, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolveIdempotent(t *testing.T) {
	loc := mustLoc(t)
	ref := time.Date(2025, time.July, 21, 10, 0, 0, 0, loc)

	inputs := []string{
		"next Friday at 8pm",
		"tomorrow at 7pm",
		"2025-08-01 19:30",
	}
	for _, input := range inputs {
		first, err := Resolve(input, ref, loc)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", input, err)
		}
		second, err := Resolve(input, ref, loc)
		if err != nil {
			t.Fatalf("Resolve(%q) second call error: %v", input, err)
		}
		if !first.Equal(second) {
			t.Errorf("Resolve(%q) not idempotent: %v vs %v", input, first, second)
		}
	}
}

func TestResolveRelativeDays(t *testing.T) {
	loc := mustLoc(t)
	ref := time.Date(2025, time.July, 21, 10, 0, 0, 0, loc)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"today", time.Date(2025, time.July, 21, 0, 0, 0, 0, loc)},
		{"tomorrow", time.Date(2025, time.July, 22, 0, 0, 0, 0, loc)},
		{"tomorrow at 7pm", time.Date(2025, time.July, 22, 19, 0, 0, 0, loc)},
		{"today at 12am", time.Date(2025, time.July, 21, 0, 0, 0, 0, loc)},
		{"Tomorrow at 12 pm", time.Date(2025, time.July, 22, 12, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Resolve(tt.input, ref, loc)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveAbsoluteFormats(t *testing.T) {
	loc := mustLoc(t)
	ref := time.Date(2025, time.July, 21, 10, 0, 0, 0, loc)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-08-01 19:30", time.Date(2025, time.August, 1, 19, 30, 0, 0, loc)},
		{"2025-08-01", time.Date(2025, time.August, 1, 0, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Resolve(tt.input, ref, loc)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveSlotDisplayFormat(t *testing.T) {
	loc := mustLoc(t)
	ref := time.Date(2025, time.July, 21, 10, 0, 0, 0, loc)

	// The display string produced by the availability tool; the model echoes
	// it back when booking.
	got, err := Resolve("Monday, July 28, 06:00 PM", ref, loc)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	want := time.Date(2025, time.July, 28, 18, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolvePrefersFuture(t *testing.T) {
	loc := mustLoc(t)
	// Late in the year; a year-less January date must resolve to next year.
	ref := time.Date(2025, time.December, 20, 10, 0, 0, 0, loc)

	got, err := Resolve("Monday, January 5, 07:00 PM", ref, loc)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got.Year() != 2026 {
		t.Errorf("Resolve year = %d, want 2026 (future-preferred)", got.Year())
	}
}

func TestResolveUnparseable(t *testing.T) {
	loc := mustLoc(t)
	ref := time.Date(2025, time.July, 21, 10, 0, 0, 0, loc)

	for _, input := range []string{"", "garbage input", "sometime nice"} {
		_, err := Resolve(input, ref, loc)
		if err == nil {
			t.Fatalf("Resolve(%q) expected error, got nil", input)
		}
		var unparseable *UnparseableError
		if !errors.As(err, &unparseable) {
			t.Errorf("Resolve(%q) error type = %T, want *UnparseableError", input, err)
		}
	}
}

func TestUnparseableErrorEchoesInput(t *testing.T) {
	err := &UnparseableError{Input: "fuzzy thursdayish"}
	if want := "fuzzy thursdayish"; !strings.Contains(err.Error(), want) {
		t.Errorf("error message %q does not echo input %q", err.Error(), want)
	}
}
