// Package llm adapts Gemini (via langchaingo) to the agent's Model seam:
// message conversion in both directions plus tool schema generation.
package llm
