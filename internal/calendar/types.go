package calendar

import (
	"fmt"
	"time"
)

// TimeRange represents a time range.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// FreeBusyInfo represents availability information for a calendar.
type FreeBusyInfo struct {
	Calendar string
	Busy     []TimeRange
	Errors   []string
}

// Slot is a candidate free time interval shared by all required attendees.
// The JSON keys mirror what the availability tool reports to the model.
type Slot struct {
	Display string    `json:"display"`
	Start   time.Time `json:"start_datetime"`
	End     time.Time `json:"end_datetime"`
}

// InviteInput is the input for creating a dinner invitation event.
type InviteInput struct {
	RestaurantName string
	Address        string
	Start          time.Time
	End            time.Time
	Attendees      []string
	Description    string
}

// CalendarError represents an error that occurred during Calendar operations.
type CalendarError struct {
	// Op is the operation that failed (e.g., "freebusy", "insert")
	Op string

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *CalendarError) Error() string {
	return fmt.Sprintf("calendar %s: %v", e.Op, e.Err)
}

// Unwrap implements the errors.Unwrap interface.
func (e *CalendarError) Unwrap() error {
	return e.Err
}

// slotDisplayLayout matches the human-readable format the assistant presents
// slots in, e.g. "Monday, July 21, 06:00 PM - 08:00 PM".
const (
	slotDisplayStartLayout = "Monday, January 02, 03:04 PM"
	slotDisplayEndLayout   = "03:04 PM"
)

// formatSlotDisplay renders a slot as a user-friendly string.
func formatSlotDisplay(start, end time.Time) string {
	return start.Format(slotDisplayStartLayout) + " - " + end.Format(slotDisplayEndLayout)
}
