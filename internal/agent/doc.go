// Package agent implements the conversation orchestration loop: it maintains
// the session history, forwards user input to the language model, executes
// requested tool calls through the registry, and feeds results back until the
// model produces a text answer.
package agent
