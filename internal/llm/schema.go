package llm

import (
	"github.com/tmc/langchaingo/llms"

	"github.com/pmalik/teamdinner/internal/tools"
)

// toLLMTools converts tool descriptors into the JSON schema form the model
// expects. Datetime parameters are advertised as strings under their "_str"
// alias so the model supplies natural language; the registry resolves them
// before execution.
func toLLMTools(descriptors []tools.Descriptor) []llms.Tool {
	out := make([]llms.Tool, 0, len(descriptors))
	for _, desc := range descriptors {
		properties := make(map[string]any, len(desc.Params))
		var required []string

		for _, p := range desc.Params {
			name := p.Name
			var schema map[string]any

			switch p.Type {
			case tools.TypeDatetime:
				name = p.Name + tools.DatetimeAliasSuffix
				schema = map[string]any{
					"type":        "string",
					"description": p.Description + " Use clear natural language (e.g. 'next Tuesday at 7pm').",
				}
			case tools.TypeStringArray:
				schema = map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": p.Description,
				}
			case tools.TypeInteger:
				schema = map[string]any{"type": "integer", "description": p.Description}
			case tools.TypeNumber:
				schema = map[string]any{"type": "number", "description": p.Description}
			case tools.TypeBoolean:
				schema = map[string]any{"type": "boolean", "description": p.Description}
			default:
				schema = map[string]any{"type": "string", "description": p.Description}
			}

			properties[name] = schema
			if p.Required {
				required = append(required, name)
			}
		}

		out = append(out, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        desc.Name,
				Description: desc.Description,
				Parameters: map[string]any{
					"type":       "object",
					"properties": properties,
					"required":   required,
				},
			},
		})
	}
	return out
}
