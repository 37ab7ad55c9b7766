package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/pmalik/teamdinner/internal/memory"
)

func newServeCmd() *cobra.Command {
	var timezone string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as an MCP server over stdio",
		Long: `Expose the dinner-planning tools (restaurant search, calendar
availability, calendar invites, generic search) to MCP clients over stdio.
The conversational loop stays in the client; this surface only serves tools.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(timezone)
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", defaultTimezone, "IANA timezone for scheduling and date resolution")

	return cmd
}

func runServe(timezone string) error {
	_ = godotenv.Load()

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	registry, err := buildToolRegistry(context.Background(), loc, memory.NewStore())
	if err != nil {
		return err
	}

	mcpSrv := mcpserver.NewMCPServer("teamdinner", version,
		mcpserver.WithToolCapabilities(true),
	)
	registry.RegisterMCP(mcpSrv)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	if err := <-serverDone; err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}
