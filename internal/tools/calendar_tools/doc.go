// Package calendar_tools registers the calendar availability and dinner
// invite tools backed by Google Calendar.
package calendar_tools
