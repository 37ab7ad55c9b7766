// Package calendar provides a client for interacting with the Google
// Calendar API.
//
// The client covers the two operations the assistant needs: finding common
// free time slots for a set of attendees via the free/busy endpoint, and
// creating a dinner event with email invitations on the primary calendar.
//
// Authentication uses the Google OAuth2 flow from the internal/google
// package.
//
// Example usage:
//
//	ctx := context.Background()
//	loc, _ := time.LoadLocation("Asia/Kolkata")
//	client, err := calendar.NewClient(ctx, loc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	slots, err := client.FindCommonFreeSlots(ctx,
//	    []string{"a@example.com"}, start, end, 2*time.Hour)
package calendar
