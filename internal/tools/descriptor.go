package tools

import (
	"context"
	"fmt"
)

// Param value types. Datetime parameters are special: they are advertised to
// the model as natural-language strings under a "_str"-suffixed key and
// resolved to absolute instants before invocation.
const (
	TypeString      = "string"
	TypeInteger     = "integer"
	TypeNumber      = "number"
	TypeBoolean     = "boolean"
	TypeStringArray = "string_array"
	TypeDatetime    = "datetime"
)

// DatetimeAliasSuffix is appended to a datetime parameter's canonical name to
// form the string-valued alias key the model is told to use.
const DatetimeAliasSuffix = "_str"

// Param describes one parameter of a tool.
type Param struct {
	Name        string
	Type        string
	Description string
	Required    bool
	// Default is applied when the argument is absent. Nil means no default.
	Default any
}

// Descriptor describes a callable capability: its name, what it does, and
// the schema of its arguments. Descriptors are static for the process
// lifetime and drive both what is advertised to the language model and how
// raw arguments are normalized before invocation.
type Descriptor struct {
	Name        string
	Description string
	Params      []Param
}

// Handler executes a tool with normalized arguments.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Error kinds for tool invocation failures.
type ErrorKind string

const (
	// KindNotFound: the model requested an unregistered capability.
	KindNotFound ErrorKind = "tool_not_found"
	// KindUnparseable: a datetime argument could not be resolved.
	KindUnparseable ErrorKind = "unparseable_datetime"
	// KindExecution: the underlying capability failed.
	KindExecution ErrorKind = "execution_error"
)

// InvokeError is a structured tool invocation failure. It never escapes the
// registry as a raised fault; it travels inside a Result.
type InvokeError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *InvokeError) Error() string {
	return e.Message
}

// Result is the outcome of one tool invocation. Exactly one of Payload or
// Err is meaningful; Err != nil means the invocation failed.
type Result struct {
	// Name is the requested tool name, echoed back even for unknown tools.
	Name string
	// Payload is the sanitized (JSON-compatible) tool output.
	Payload any
	// Err is the structured failure, if any.
	Err *InvokeError
}

// Response returns the payload to report back into the conversation:
// {"result": payload} on success, {"error": message} on failure.
func (r Result) Response() map[string]any {
	if r.Err != nil {
		return map[string]any{"error": r.Err.Message}
	}
	return map[string]any{"result": r.Payload}
}

// notFoundMessage formats the error for an unregistered tool name.
func notFoundMessage(name string) string {
	return fmt.Sprintf("Tool '%s' not found.", name)
}
