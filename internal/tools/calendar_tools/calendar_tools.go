package calendar_tools

import (
	"context"
	"fmt"
	"time"

	"github.com/pmalik/teamdinner/internal/calendar"
	"github.com/pmalik/teamdinner/internal/memory"
	"github.com/pmalik/teamdinner/internal/tools"
)

// Scheduler is the calendar capability the tools need. *calendar.Client
// implements it; tests substitute fakes.
type Scheduler interface {
	FindCommonFreeSlots(ctx context.Context, attendees []string, searchStart, searchEnd time.Time, slotDuration time.Duration) ([]calendar.Slot, error)
	SendDinnerInvite(ctx context.Context, input calendar.InviteInput) (string, error)
}

// RegisterCalendarTools registers the availability and invite tools.
// Successful availability lookups overwrite the available-slots cache
// wholesale so the surrounding UI can show the latest results.
func RegisterCalendarTools(r *tools.Registry, scheduler Scheduler, cache *memory.Store) {
	r.Register(tools.Descriptor{
		Name:        "check_calendar_availability",
		Description: "Find common free time slots across the team's Google Calendars within a search window.",
		Params: []tools.Param{
			{Name: "team_members_emails", Type: tools.TypeStringArray, Description: "Email addresses of every attendee to check.", Required: true},
			{Name: "search_start_dt", Type: tools.TypeDatetime, Description: "Start of the search window.", Required: true},
			{Name: "search_end_dt", Type: tools.TypeDatetime, Description: "End of the search window.", Required: true},
			{Name: "slot_duration_minutes", Type: tools.TypeInteger, Description: "Desired slot length in minutes.", Default: 120},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		return handleCheckAvailability(ctx, args, scheduler, cache)
	})

	r.Register(tools.Descriptor{
		Name:        "send_calendar_invite",
		Description: "Send a Google Calendar dinner invite to the team for a confirmed restaurant and time slot.",
		Params: []tools.Param{
			{Name: "restaurant_name", Type: tools.TypeString, Description: "Name of the restaurant.", Required: true},
			{Name: "address", Type: tools.TypeString, Description: "Street address of the restaurant.", Required: true},
			{Name: "slot_datetime_start", Type: tools.TypeDatetime, Description: "When the dinner starts.", Required: true},
			{Name: "slot_datetime_end", Type: tools.TypeDatetime, Description: "When the dinner ends.", Required: true},
			{Name: "attendees_emails", Type: tools.TypeStringArray, Description: "Email addresses of every invitee.", Required: true},
			{Name: "description", Type: tools.TypeString, Description: "Optional event description."},
		},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		return handleSendInvite(ctx, args, scheduler)
	})
}

func handleCheckAvailability(ctx context.Context, args map[string]any, scheduler Scheduler, cache *memory.Store) (any, error) {
	emails, err := tools.StringSliceArg(args, "team_members_emails")
	if err != nil {
		return nil, err
	}
	searchStart, err := tools.TimeArg(args, "search_start_dt")
	if err != nil {
		return nil, err
	}
	searchEnd, err := tools.TimeArg(args, "search_end_dt")
	if err != nil {
		return nil, err
	}
	minutes, err := tools.IntArg(args, "slot_duration_minutes")
	if err != nil {
		return nil, err
	}
	if !searchEnd.After(searchStart) {
		return nil, fmt.Errorf("search window is empty: start %s is not before end %s",
			searchStart.Format(time.RFC3339), searchEnd.Format(time.RFC3339))
	}

	slots, err := scheduler.FindCommonFreeSlots(ctx, emails, searchStart, searchEnd, time.Duration(minutes)*time.Minute)
	if err != nil {
		return nil, err
	}

	cache.Update(memory.KeyAvailableSlots, slots)
	return slots, nil
}

func handleSendInvite(ctx context.Context, args map[string]any, scheduler Scheduler) (any, error) {
	name, err := tools.StringArg(args, "restaurant_name")
	if err != nil {
		return nil, err
	}
	address, err := tools.StringArg(args, "address")
	if err != nil {
		return nil, err
	}
	start, err := tools.TimeArg(args, "slot_datetime_start")
	if err != nil {
		return nil, err
	}
	end, err := tools.TimeArg(args, "slot_datetime_end")
	if err != nil {
		return nil, err
	}
	attendees, err := tools.StringSliceArg(args, "attendees_emails")
	if err != nil {
		return nil, err
	}
	description, err := tools.OptionalStringArg(args, "description", "")
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, fmt.Errorf("invite slot is empty: start %s is not before end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	if len(attendees) == 0 {
		return nil, fmt.Errorf("attendees_emails must not be empty")
	}

	link, err := scheduler.SendDinnerInvite(ctx, calendar.InviteInput{
		RestaurantName: name,
		Address:        address,
		Start:          start,
		End:            end,
		Attendees:      attendees,
		Description:    description,
	})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"invite_sent": true,
		"event_link":  link,
	}, nil
}
