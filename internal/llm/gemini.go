package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/pmalik/teamdinner/internal/agent"
	"github.com/pmalik/teamdinner/internal/tools"
)

// DefaultModel is the Gemini model used unless overridden.
const DefaultModel = "gemini-1.5-flash"

// defaultTimeout bounds a single model request.
const defaultTimeout = 60 * time.Second

// Client adapts a Gemini model behind langchaingo to the agent.Model seam.
type Client struct {
	llm     llms.Model
	timeout time.Duration
}

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	model   string
	timeout time.Duration
}

// WithModel overrides the Gemini model name.
func WithModel(model string) Option {
	return func(c *clientConfig) {
		c.model = model
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// New creates a Gemini-backed client. The API key is required.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google API key is required")
	}
	cfg := clientConfig{model: DefaultModel, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(cfg.model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{llm: llm, timeout: cfg.timeout}, nil
}

// NewWithLLM wraps an existing langchaingo model. Tests use this to inject
// fakes.
func NewWithLLM(llm llms.Model) *Client {
	return &Client{llm: llm, timeout: defaultTimeout}
}

// Generate sends the system instruction, the conversation so far, and the
// tool schemas to the model, and converts the response into a single model
// turn. Transport failures come back as *agent.UpstreamError.
func (c *Client) Generate(ctx context.Context, system string, history []agent.Turn, descriptors []tools.Descriptor) (agent.Turn, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := make([]llms.MessageContent, 0, len(history)+1)
	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeSystem,
		Parts: []llms.ContentPart{llms.TextContent{Text: system}},
	})
	for _, turn := range history {
		msg, err := toMessage(turn)
		if err != nil {
			return agent.Turn{}, &agent.UpstreamError{Op: "encode", Err: err}
		}
		messages = append(messages, msg)
	}

	resp, err := c.llm.GenerateContent(ctx, messages, llms.WithTools(toLLMTools(descriptors)))
	if err != nil {
		return agent.Turn{}, &agent.UpstreamError{Op: "generate", Err: err}
	}
	if len(resp.Choices) == 0 {
		return agent.Turn{Role: agent.RoleModel}, nil
	}
	return fromChoice(resp.Choices[0])
}

// toMessage converts one conversation turn into a langchaingo message.
func toMessage(turn agent.Turn) (llms.MessageContent, error) {
	switch turn.Role {
	case agent.RoleUser:
		msg := llms.MessageContent{Role: llms.ChatMessageTypeHuman}
		for _, part := range turn.Parts {
			if text, ok := part.(agent.TextPart); ok {
				msg.Parts = append(msg.Parts, llms.TextContent{Text: text.Text})
			}
		}
		return msg, nil

	case agent.RoleModel:
		msg := llms.MessageContent{Role: llms.ChatMessageTypeAI}
		for _, part := range turn.Parts {
			switch p := part.(type) {
			case agent.TextPart:
				msg.Parts = append(msg.Parts, llms.TextContent{Text: p.Text})
			case agent.ToolCallPart:
				args, err := json.Marshal(p.Args)
				if err != nil {
					return llms.MessageContent{}, fmt.Errorf("failed to encode tool call %s: %w", p.Name, err)
				}
				msg.Parts = append(msg.Parts, llms.ToolCall{
					ID:   p.ID,
					Type: "function",
					FunctionCall: &llms.FunctionCall{
						Name:      p.Name,
						Arguments: string(args),
					},
				})
			}
		}
		return msg, nil

	case agent.RoleTool:
		msg := llms.MessageContent{Role: llms.ChatMessageTypeTool}
		for _, part := range turn.Parts {
			result, ok := part.(agent.ToolResultPart)
			if !ok {
				continue
			}
			payload, err := json.Marshal(result.Payload)
			if err != nil {
				return llms.MessageContent{}, fmt.Errorf("failed to encode tool result %s: %w", result.Name, err)
			}
			msg.Parts = append(msg.Parts, llms.ToolCallResponse{
				ToolCallID: result.ID,
				Name:       result.Name,
				Content:    string(payload),
			})
		}
		return msg, nil

	default:
		return llms.MessageContent{}, fmt.Errorf("unknown turn role %q", turn.Role)
	}
}

// fromChoice converts a model response choice into a model turn. Tool call
// arguments arrive as a JSON string and are decoded into a map.
func fromChoice(choice *llms.ContentChoice) (agent.Turn, error) {
	turn := agent.Turn{Role: agent.RoleModel}
	if choice.Content != "" {
		turn.Parts = append(turn.Parts, agent.TextPart{Text: choice.Content})
	}
	for _, call := range choice.ToolCalls {
		if call.FunctionCall == nil {
			continue
		}
		args := make(map[string]any)
		if call.FunctionCall.Arguments != "" {
			if err := json.Unmarshal([]byte(call.FunctionCall.Arguments), &args); err != nil {
				return agent.Turn{}, &agent.UpstreamError{
					Op:  "decode",
					Err: fmt.Errorf("tool call %s has malformed arguments: %w", call.FunctionCall.Name, err),
				}
			}
		}
		turn.Parts = append(turn.Parts, agent.ToolCallPart{
			ID:   call.ID,
			Name: call.FunctionCall.Name,
			Args: args,
		})
	}
	return turn, nil
}
