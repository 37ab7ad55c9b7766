package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pmalik/teamdinner/internal/calendar"
	"github.com/pmalik/teamdinner/internal/google"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Calendar access",
		Long: `Authorize the assistant to read availability and create events in Google
Calendar. Prints an authorization URL, then exchanges the code you paste back
for a token cached on disk.

Requires GOOGLE_OAUTH_CLIENT_ID and GOOGLE_OAUTH_CLIENT_SECRET in .env or the
environment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth()
		},
	}
	return cmd
}

func runAuth() error {
	_ = godotenv.Load()

	if os.Getenv("GOOGLE_OAUTH_CLIENT_ID") == "" || os.Getenv("GOOGLE_OAUTH_CLIENT_SECRET") == "" {
		return fmt.Errorf("GOOGLE_OAUTH_CLIENT_ID and GOOGLE_OAUTH_CLIENT_SECRET must be set")
	}

	if calendar.HasToken() {
		fmt.Println("A Google Calendar token is already cached. Continuing will replace it.")
	}

	fmt.Println("Visit this URL in your browser and grant access to Google Calendar:")
	fmt.Println()
	fmt.Println("  " + calendar.GetAuthURL())
	fmt.Println()
	fmt.Print("Paste the authorization code here: ")

	reader := bufio.NewReader(os.Stdin)
	code, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("no authorization code provided")
	}

	if err := google.SaveToken(context.Background(), code); err != nil {
		return err
	}

	fmt.Println("Authorization complete. You can now run \"teamdinner chat\".")
	return nil
}
