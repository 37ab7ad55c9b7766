package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// UnparseableError indicates that a date/time string could not be resolved
// to an absolute instant by any parsing strategy.
type UnparseableError struct {
	Input string
}

// Error implements the error interface.
func (e *UnparseableError) Error() string {
	return fmt.Sprintf("could not parse datetime %q: provide a clearer date/time (e.g. '2006-01-02 15:04' or 'next Tuesday at 7pm')", e.Input)
}

var (
	nextWeekdayRe = regexp.MustCompile(`(?i)next\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\s+at\s+(\d{1,2})\s*(am|pm)?`)
	relativeDayRe = regexp.MustCompile(`(?i)^(today|tomorrow)(?:\s+at\s+(\d{1,2})\s*(am|pm)?)?$`)
	yearRe        = regexp.MustCompile(`\b\d{4}\b`)
)

// Layouts the model commonly echoes back, most notably the slot display format
// produced by the availability tool. Year-less layouts are anchored on the
// reference year and bumped forward when they land in the past.
var knownLayouts = []string{
	"Monday, January 2, 03:04 PM",
	"Monday, January 2, 3:04 PM",
	"Monday, January 2 03:04 PM",
	"January 2, 03:04 PM",
	"January 2 at 3:04 PM",
	"Monday, January 2, 2006, 03:04 PM",
}

// Resolve converts a natural-language date/time phrase into an absolute
// instant in loc, using ref as the anchor for relative phrases. Strategies are
// tried in order and the first success wins:
//
//  1. relative-day phrases ("today", "tomorrow at 7pm")
//  2. a set of known display layouts, then a general parse via dateparse
//  3. the "next <weekday> at <hour>[am|pm]" pattern
//
// Ambiguous year-less dates prefer the future. If every strategy fails an
// *UnparseableError is returned; the caller must never default silently.
func Resolve(text string, ref time.Time, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, &UnparseableError{Input: text}
	}
	ref = ref.In(loc)

	if t, ok := resolveRelativeDay(trimmed, ref, loc); ok {
		return t, nil
	}

	if t, ok := resolveLayouts(trimmed, ref, loc); ok {
		return t, nil
	}

	if t, err := dateparse.ParseIn(trimmed, loc); err == nil {
		return preferFuture(trimmed, t.In(loc), ref), nil
	}

	if t, ok := resolveNextWeekday(trimmed, ref, loc); ok {
		return t, nil
	}

	return time.Time{}, &UnparseableError{Input: text}
}

// resolveRelativeDay handles "today" and "tomorrow", optionally with an
// "at <hour>[am|pm]" suffix. A bare day resolves to midnight in loc.
func resolveRelativeDay(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	m := relativeDayRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	day := ref
	if strings.EqualFold(m[1], "tomorrow") {
		day = day.AddDate(0, 0, 1)
	}

	hour := 0
	if m[2] != "" {
		h, err := strconv.Atoi(m[2])
		if err != nil || h > 23 {
			return time.Time{}, false
		}
		hour = to24Hour(h, m[3])
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc), true
}

// resolveLayouts tries the known display layouts. Layouts without a year are
// parsed against the reference year and pushed one year forward when the
// result precedes ref.
func resolveLayouts(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	for _, layout := range knownLayouts {
		t, err := time.ParseInLocation(layout, text, loc)
		if err != nil {
			continue
		}
		if t.Year() == 0 {
			t = time.Date(ref.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc)
		}
		return preferFuture(text, t, ref), true
	}
	return time.Time{}, false
}

// resolveNextWeekday implements the deterministic fallback for the phrase
// shape "next <weekday> at <hour>[am|pm]". "Next X" never means today: when
// the reference day already is the target weekday the result jumps a full
// week ahead. Hour-only input implies zero minutes and seconds.
func resolveNextWeekday(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	m := nextWeekdayRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return time.Time{}, false
	}

	target, ok := parseWeekday(m[1])
	if !ok {
		return time.Time{}, false
	}

	hour, err := strconv.Atoi(m[2])
	if err != nil || hour > 23 {
		return time.Time{}, false
	}
	hour = to24Hour(hour, m[3])

	daysAhead := (int(target) - int(ref.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	day := ref.AddDate(0, 0, daysAhead)

	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc), true
}

// preferFuture advances a parsed instant by one year when the input carried
// no explicit year and the instant lies before the reference.
func preferFuture(input string, t, ref time.Time) time.Time {
	if t.Before(ref) && !yearRe.MatchString(input) {
		return t.AddDate(1, 0, 0)
	}
	return t
}

// to24Hour applies 12-hour to 24-hour conversion: 12pm stays 12, 12am
// becomes 0. Without an am/pm marker the hour is taken as given.
func to24Hour(hour int, ampm string) int {
	switch strings.ToLower(ampm) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}

func parseWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(s) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	default:
		return 0, false
	}
}
