package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the teamdinner application
var rootCmd = &cobra.Command{
	Use:   "teamdinner",
	Short: "AI assistant that organizes team dinners",
	Long: `teamdinner is a conversational assistant that plans team dinners: it
searches for restaurants, finds common free slots in the team's Google
Calendars, and sends out calendar invitations.

It can run as:
  - An interactive chat assistant (default)
  - An MCP (Model Context Protocol) server exposing the dinner-planning tools`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "teamdinner version %s\n" .Version}}`)

	// If no subcommand is provided, run the chat command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "chat")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
