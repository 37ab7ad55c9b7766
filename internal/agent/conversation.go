package agent

import "sync"

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
	RoleTool  Role = "tool"
)

// Part is one piece of a turn's content.
type Part interface {
	isPart()
}

// TextPart is prose produced by the user or the model.
type TextPart struct {
	Text string
}

// ToolCallPart is a model request to invoke a tool.
type ToolCallPart struct {
	ID   string
	Name string
	Args map[string]any
}

// ToolResultPart carries the outcome of one tool invocation back to the
// model. Payload is always {"result": ...} or {"error": ...}.
type ToolResultPart struct {
	ID      string
	Name    string
	Payload map[string]any
}

func (TextPart) isPart()       {}
func (ToolCallPart) isPart()   {}
func (ToolResultPart) isPart() {}

// Turn is one entry in the conversation history.
type Turn struct {
	Role  Role
	Parts []Part
}

// Conversation is the append-only history of a session. Every model response
// is recorded exactly once, tool calls included, so the model always sees a
// coherent record on the next round. Access is mutex-guarded; turn ordering
// across concurrent writers is still the caller's responsibility.
type Conversation struct {
	mu    sync.RWMutex
	turns []Turn
}

// Append adds a turn to the history.
func (c *Conversation) Append(t Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, t)
}

// Turns returns a copy of the history.
func (c *Conversation) Turns() []Turn {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Len returns the number of recorded turns.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.turns)
}

// Reset clears the history.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = nil
}
