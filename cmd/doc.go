// Package cmd implements the teamdinner command line interface: the
// interactive chat assistant, Google Calendar authorization, and the MCP
// server surface.
package cmd
