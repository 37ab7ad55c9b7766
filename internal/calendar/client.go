package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/pmalik/teamdinner/internal/google"
)

// slotScanStep is the increment the availability search advances by when
// scanning the window for free slots.
const slotScanStep = 30 * time.Minute

// maxReportedSlots caps how many free slots an availability check reports.
const maxReportedSlots = 3

// Client wraps the Google Calendar service.
type Client struct {
	svc *calendar.Service
	loc *time.Location
}

// HasToken checks if a valid OAuth token exists.
func HasToken() bool {
	return google.NewFileTokenProvider().HasToken()
}

// GetAuthURL returns the URL a user must visit to authorize calendar access.
func GetAuthURL() string {
	return google.GetAuthURL()
}

// NewClientWithProvider creates a new Calendar client with OAuth2
// authentication using the provided token provider. All instants reported by
// the client are normalized into loc.
func NewClientWithProvider(ctx context.Context, provider google.TokenProvider, loc *time.Location) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("token provider cannot be nil")
	}

	token, err := provider.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token: %w", err)
	}

	client := google.NewHTTPClient(ctx, token)

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{svc: svc, loc: loc}, nil
}

// NewClient creates a new Calendar client using the default file-based token
// provider.
func NewClient(ctx context.Context, loc *time.Location) (*Client, error) {
	return NewClientWithProvider(ctx, google.NewFileTokenProvider(), loc)
}

// QueryFreeBusy checks availability for calendars in a time range.
func (c *Client) QueryFreeBusy(ctx context.Context, timeMin, timeMax time.Time, calendarIDs []string) ([]FreeBusyInfo, error) {
	items := make([]*calendar.FreeBusyRequestItem, len(calendarIDs))
	for i, id := range calendarIDs {
		items[i] = &calendar.FreeBusyRequestItem{Id: id}
	}

	query := &calendar.FreeBusyRequest{
		TimeMin:  timeMin.Format(time.RFC3339),
		TimeMax:  timeMax.Format(time.RFC3339),
		TimeZone: c.loc.String(),
		Items:    items,
	}

	result, err := c.svc.Freebusy.Query(query).Context(ctx).Do()
	if err != nil {
		return nil, &CalendarError{Op: "freebusy", Err: err}
	}

	var infos []FreeBusyInfo
	for calID, cal := range result.Calendars {
		info := FreeBusyInfo{Calendar: calID}

		for _, busy := range cal.Busy {
			start, err := time.Parse(time.RFC3339, busy.Start)
			if err != nil {
				info.Errors = append(info.Errors, fmt.Sprintf("bad busy start %q", busy.Start))
				continue
			}
			end, err := time.Parse(time.RFC3339, busy.End)
			if err != nil {
				info.Errors = append(info.Errors, fmt.Sprintf("bad busy end %q", busy.End))
				continue
			}
			info.Busy = append(info.Busy, TimeRange{Start: start.In(c.loc), End: end.In(c.loc)})
		}

		for _, calErr := range cal.Errors {
			info.Errors = append(info.Errors, calErr.Reason)
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// FindCommonFreeSlots finds time slots where every attendee is free.
// The "primary" calendar of the authenticated user is always included. Busy
// intervals from all calendars are merged into one timeline, then the search
// window is scanned in 30-minute steps for gaps of the requested duration.
// At most three slots are reported, each with a display string.
func (c *Client) FindCommonFreeSlots(ctx context.Context, attendees []string, searchStart, searchEnd time.Time, slotDuration time.Duration) ([]Slot, error) {
	ids := make([]string, 0, len(attendees)+1)
	hasPrimary := false
	for _, email := range attendees {
		if email == "primary" {
			hasPrimary = true
		}
		ids = append(ids, email)
	}
	if !hasPrimary {
		ids = append(ids, "primary")
	}

	infos, err := c.QueryFreeBusy(ctx, searchStart, searchEnd, ids)
	if err != nil {
		return nil, err
	}

	var allBusy []TimeRange
	for _, info := range infos {
		allBusy = append(allBusy, info.Busy...)
	}

	free := findFreeSlots(mergeBusy(allBusy), searchStart.In(c.loc), searchEnd.In(c.loc), slotDuration)

	if len(free) > maxReportedSlots {
		free = free[:maxReportedSlots]
	}

	slots := make([]Slot, 0, len(free))
	for _, r := range free {
		slots = append(slots, Slot{
			Display: formatSlotDisplay(r.Start, r.End),
			Start:   r.Start,
			End:     r.End,
		})
	}

	return slots, nil
}

// SendDinnerInvite creates a dinner event on the primary calendar and emails
// invitations to all attendees. Returns the link of the created event.
func (c *Client) SendDinnerInvite(ctx context.Context, input InviteInput) (string, error) {
	description := input.Description
	if description == "" {
		description = "A celebratory team dinner arranged by your AI Assistant!"
	}

	attendees := make([]*calendar.EventAttendee, 0, len(input.Attendees))
	for _, email := range input.Attendees {
		attendees = append(attendees, &calendar.EventAttendee{Email: email})
	}

	event := &calendar.Event{
		Summary:     fmt.Sprintf("Team Dinner at %s", input.RestaurantName),
		Location:    input.Address,
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: c.loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: c.loc.String(),
		},
		Attendees: attendees,
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 10},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := c.svc.Events.Insert("primary", event).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return "", &CalendarError{Op: "insert", Err: err}
	}

	return created.HtmlLink, nil
}

// mergeBusy sorts busy intervals and coalesces overlapping or touching ones
// into a single timeline.
func mergeBusy(busy []TimeRange) []TimeRange {
	if len(busy) == 0 {
		return nil
	}

	sorted := make([]TimeRange, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []TimeRange{sorted[0]}
	for _, next := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !next.Start.After(last.End) {
			if next.End.After(last.End) {
				last.End = next.End
			}
			continue
		}
		merged = append(merged, next)
	}

	return merged
}

// findFreeSlots scans [searchStart, searchEnd] in slotScanStep increments for
// slots of the given duration that do not overlap any merged busy interval.
func findFreeSlots(mergedBusy []TimeRange, searchStart, searchEnd time.Time, duration time.Duration) []TimeRange {
	var free []TimeRange

	for start := searchStart; !start.Add(duration).After(searchEnd); start = start.Add(slotScanStep) {
		end := start.Add(duration)

		isFree := true
		for _, busy := range mergedBusy {
			if end.After(busy.Start) && start.Before(busy.End) {
				isFree = false
				break
			}
		}

		if isFree {
			free = append(free, TimeRange{Start: start, End: end})
		}
	}

	return free
}
