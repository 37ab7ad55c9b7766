package agent

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pmalik/teamdinner/internal/instrumentation"
	"github.com/pmalik/teamdinner/internal/logging"
	"github.com/pmalik/teamdinner/internal/tools"
)

// DefaultMaxRounds bounds how many tool round-trips a single user turn may
// trigger before the loop gives up with ErrMaxRounds.
const DefaultMaxRounds = 8

// fallbackResponse is returned when the model produces an empty response.
const fallbackResponse = "I processed the request but have no specific response."

// Model is the language model seam. Implementations send the system
// instruction, the full history, and the tool schemas, and return the
// model's next turn.
type Model interface {
	Generate(ctx context.Context, system string, history []Turn, descriptors []tools.Descriptor) (Turn, error)
}

// Assistant drives the conversation: it forwards user input to the model,
// executes the tool calls the model requests, feeds results back, and
// repeats until the model answers in text.
type Assistant struct {
	model     Model
	registry  *tools.Registry
	session   *Session
	loc       *time.Location
	now       func() time.Time
	maxRounds int
	logger    *slog.Logger
	metrics   *instrumentation.Metrics
}

// AssistantOption configures an Assistant.
type AssistantOption func(*Assistant)

// WithMaxRounds overrides the tool round-trip limit per user turn.
func WithMaxRounds(n int) AssistantOption {
	return func(a *Assistant) {
		if n > 0 {
			a.maxRounds = n
		}
	}
}

// WithClock overrides the time source used for the system instruction.
func WithClock(now func() time.Time) AssistantOption {
	return func(a *Assistant) {
		a.now = now
	}
}

// WithLogger sets the assistant's logger.
func WithLogger(logger *slog.Logger) AssistantOption {
	return func(a *Assistant) {
		a.logger = logger
	}
}

// WithMetrics enables metric recording.
func WithMetrics(m *instrumentation.Metrics) AssistantOption {
	return func(a *Assistant) {
		a.metrics = m
	}
}

// NewAssistant creates an assistant bound to a model, a tool registry, and a
// session.
func NewAssistant(model Model, registry *tools.Registry, session *Session, loc *time.Location, opts ...AssistantOption) *Assistant {
	a := &Assistant{
		model:     model,
		registry:  registry,
		session:   session,
		loc:       loc,
		now:       time.Now,
		maxRounds: DefaultMaxRounds,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Session returns the assistant's session.
func (a *Assistant) Session() *Session {
	return a.session
}

// ProcessTurn handles one user message end to end and returns the model's
// final text answer. Emails found in the input are absorbed into the team
// member set before the model sees the message. Tool failures are reported
// back to the model inside the conversation; only transport failures and the
// round limit surface as errors.
func (a *Assistant) ProcessTurn(ctx context.Context, userInput string) (string, error) {
	log := logging.WithSession(a.logger, a.session.ID())

	if added := a.session.AbsorbEmails(userInput); len(added) > 0 {
		for _, email := range added {
			log.Info("added team member", logging.UserHash(email))
		}
	}

	system := SystemInstruction(a.now(), a.loc, a.session.TeamMembers())
	conv := a.session.Conversation()
	conv.Append(Turn{Role: RoleUser, Parts: []Part{TextPart{Text: userInput}}})
	a.metrics.RecordConversationTurn(ctx)

	for round := 1; round <= a.maxRounds; round++ {
		start := time.Now()
		modelTurn, err := a.model.Generate(ctx, system, conv.Turns(), a.registry.Descriptors())
		a.metrics.RecordModelRequest(ctx, err == nil, time.Since(start))
		if err != nil {
			log.Error("model request failed", logging.Round(round), logging.Err(err))
			return "", err
		}

		calls, texts := partitionParts(modelTurn.Parts)

		if len(calls) == 0 && len(texts) == 0 {
			conv.Append(Turn{Role: RoleModel, Parts: []Part{TextPart{Text: fallbackResponse}}})
			return fallbackResponse, nil
		}
		conv.Append(modelTurn)

		if len(calls) == 0 {
			answer := strings.Join(texts, " ")
			log.Info("turn complete", logging.Round(round), logging.Status(logging.StatusSuccess))
			return answer, nil
		}

		// One tool turn per model response, carrying one result per call in
		// request order.
		results := make([]Part, 0, len(calls))
		for _, call := range calls {
			log.Info("tool requested", logging.Round(round), logging.Tool(call.Name))
			result := a.registry.Invoke(ctx, call.Name, call.Args)
			a.metrics.RecordToolInvocation(ctx, call.Name, result.Err == nil)
			results = append(results, ToolResultPart{
				ID:      call.ID,
				Name:    call.Name,
				Payload: result.Response(),
			})
		}
		conv.Append(Turn{Role: RoleTool, Parts: results})
	}

	log.Warn("round limit reached", logging.Round(a.maxRounds))
	return "", ErrMaxRounds
}

// partitionParts splits a model turn into tool calls and text, preserving
// order within each group. Tool calls without an ID get one assigned so the
// matching result can reference it.
func partitionParts(parts []Part) ([]ToolCallPart, []string) {
	var calls []ToolCallPart
	var texts []string
	for i := range parts {
		switch p := parts[i].(type) {
		case ToolCallPart:
			if p.ID == "" {
				p.ID = uuid.NewString()
				parts[i] = p
			}
			calls = append(calls, p)
		case TextPart:
			if p.Text != "" {
				texts = append(texts, p.Text)
			}
		}
	}
	return calls, texts
}
