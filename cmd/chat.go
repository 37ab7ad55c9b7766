package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pmalik/teamdinner/internal/agent"
	"github.com/pmalik/teamdinner/internal/calendar"
	"github.com/pmalik/teamdinner/internal/instrumentation"
	"github.com/pmalik/teamdinner/internal/llm"
	"github.com/pmalik/teamdinner/internal/memory"
	"github.com/pmalik/teamdinner/internal/places"
	"github.com/pmalik/teamdinner/internal/tools"
	"github.com/pmalik/teamdinner/internal/tools/calendar_tools"
	"github.com/pmalik/teamdinner/internal/tools/places_tools"
	"github.com/pmalik/teamdinner/internal/tools/search_tools"
	"github.com/pmalik/teamdinner/internal/websearch"
)

// defaultTimezone is where the team is based; calendar searches, invites,
// and relative date resolution all happen in this zone unless overridden.
const defaultTimezone = "Asia/Kolkata"

func newChatCmd() *cobra.Command {
	var (
		timezone  string
		team      []string
		modelName string
		maxRounds int
		debugMode bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive dinner-planning conversation",
		Long: `Start an interactive conversation with the assistant. The assistant asks
for team member emails and cuisine preferences, searches restaurants, checks
calendar availability, and sends invites once you confirm a plan.

Requires GOOGLE_API_KEY for the language model. GOOGLE_PLACES_API_KEY is
optional; without it restaurant search returns simulated results. Run
"teamdinner auth" first to authorize Google Calendar access.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(timezone, team, modelName, maxRounds, debugMode)
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", defaultTimezone, "IANA timezone for scheduling and date resolution")
	cmd.Flags().StringSliceVar(&team, "team", nil, "Initial team member emails (comma-separated)")
	cmd.Flags().StringVar(&modelName, "model", llm.DefaultModel, "Gemini model to use")
	cmd.Flags().IntVar(&maxRounds, "max-rounds", agent.DefaultMaxRounds, "Maximum tool round-trips per user message")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	return cmd
}

func runChat(timezone string, team []string, modelName string, maxRounds int, debugMode bool) error {
	// Best effort; the environment may already carry the keys.
	_ = godotenv.Load()

	setupLogging(debugMode)

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY not set: add it to .env or the environment")
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	ctx := context.Background()

	session := agent.NewSession(team)
	registry, err := buildToolRegistry(ctx, loc, session.Caches())
	if err != nil {
		return err
	}

	model, err := llm.New(ctx, apiKey, llm.WithModel(modelName))
	if err != nil {
		return err
	}

	metrics, err := instrumentation.NewMetrics()
	if err != nil {
		return fmt.Errorf("failed to set up metrics: %w", err)
	}

	assistant := agent.NewAssistant(model, registry, session, loc,
		agent.WithMetrics(metrics),
		agent.WithMaxRounds(maxRounds),
	)

	fmt.Println("AI Assistant is ready! Type 'exit' to quit.")
	if members := session.TeamMembers(); len(members) > 0 {
		fmt.Println("Initial team members: " + strings.Join(members, ", "))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			fmt.Println("Assistant: Goodbye!")
			break
		}

		answer, err := assistant.ProcessTurn(ctx, input)
		if err != nil {
			fmt.Printf("Assistant: Sorry, something went wrong: %v\n", err)
			continue
		}
		fmt.Printf("\nAssistant: %s\n", answer)
		printCaches(session.Caches())
	}
	return scanner.Err()
}

// buildToolRegistry wires the full tool surface against real clients.
func buildToolRegistry(ctx context.Context, loc *time.Location, cache *memory.Store) (*tools.Registry, error) {
	if !calendar.HasToken() {
		return nil, fmt.Errorf("no Google Calendar authorization found: run \"teamdinner auth\" first")
	}
	cal, err := calendar.NewClient(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar client: %w", err)
	}

	registry := tools.NewRegistry(loc)
	calendar_tools.RegisterCalendarTools(registry, cal, cache)
	places_tools.RegisterPlacesTools(registry, places.NewClient(os.Getenv("GOOGLE_PLACES_API_KEY")), cache)
	search_tools.RegisterSearchTools(registry, websearch.NewStaticSearcher())
	return registry, nil
}

// printCaches shows the last tool results so the user can refer to them by
// number in follow-up messages.
func printCaches(cache *memory.Store) {
	if slots, ok := cache.Get(memory.KeyAvailableSlots).([]calendar.Slot); ok && len(slots) > 0 {
		fmt.Println("\nAvailable slots:")
		for i, slot := range slots {
			fmt.Printf("  %d. %s\n", i+1, slot.Display)
		}
	}
	if restaurants, ok := cache.Get(memory.KeyFoundRestaurants).([]places.Restaurant); ok && len(restaurants) > 0 {
		fmt.Println("\nRestaurants found:")
		for i, r := range restaurants {
			fmt.Printf("  %d. %s (%s) - %s\n", i+1, r.Name, r.Rating, r.Address)
		}
	}
}

// setupLogging routes structured logs to stderr so they never interleave
// with the conversation on stdout.
func setupLogging(debugMode bool) {
	level := slog.LevelWarn
	if debugMode {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
