// Package logging provides structured logging utilities for the teamdinner
// assistant.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "check_calendar_availability")
//	logger.Info("tool finished", logging.Status(logging.StatusSuccess))
//
// Attendee emails are PII; hash them before logging:
//
//	logger.Info("team member added", logging.UserHash(email))
package logging
