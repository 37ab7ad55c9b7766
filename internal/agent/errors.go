package agent

import (
	"errors"
	"fmt"
)

// ErrMaxRounds indicates the model kept requesting tools past the round
// limit without producing a final answer.
var ErrMaxRounds = errors.New("model did not produce a final answer within the round limit")

// UpstreamError wraps a language model transport failure. Tool failures
// never surface here; they are reported back into the conversation instead.
type UpstreamError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}
