package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterMCP exposes every registered tool on an MCP server. The bridge
// translates schemas and results; normalization and error folding stay in the
// registry so MCP callers get the same behavior the chat loop does.
//
// Datetime params are advertised as string params under their "_str" alias.
// String-array params are advertised as comma-separated strings.
func (r *Registry) RegisterMCP(s *mcpserver.MCPServer) {
	for _, desc := range r.Descriptors() {
		tool := mcp.NewTool(desc.Name, mcpToolOptions(desc)...)
		name := desc.Name
		arrayParams := arrayParamNames(desc)

		s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})
			raw := make(map[string]any, len(args))
			for k, v := range args {
				raw[k] = v
			}
			for _, p := range arrayParams {
				if s, ok := raw[p].(string); ok {
					raw[p] = splitCommaList(s)
				}
			}

			result := r.Invoke(ctx, name, raw)
			if result.Err != nil {
				return mcp.NewToolResultError(result.Err.Message), nil
			}
			out, err := json.MarshalIndent(result.Payload, "", "  ")
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to serialize result: %v", err)), nil
			}
			return mcp.NewToolResultText(string(out)), nil
		})
	}
}

// mcpToolOptions builds the mcp.NewTool options for a descriptor.
func mcpToolOptions(desc Descriptor) []mcp.ToolOption {
	opts := []mcp.ToolOption{mcp.WithDescription(desc.Description)}
	for _, p := range desc.Params {
		var propOpts []mcp.PropertyOption
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}

		switch p.Type {
		case TypeDatetime:
			propOpts = append(propOpts, mcp.Description(p.Description+" Natural language is accepted (e.g. 'next Tuesday at 7pm')."))
			opts = append(opts, mcp.WithString(p.Name+DatetimeAliasSuffix, propOpts...))
		case TypeStringArray:
			propOpts = append(propOpts, mcp.Description(p.Description+" Comma-separated list."))
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		case TypeInteger, TypeNumber:
			propOpts = append(propOpts, mcp.Description(p.Description))
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		case TypeBoolean:
			propOpts = append(propOpts, mcp.Description(p.Description))
			opts = append(opts, mcp.WithBoolean(p.Name, propOpts...))
		default:
			propOpts = append(propOpts, mcp.Description(p.Description))
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		}
	}
	return opts
}

// arrayParamNames lists the params advertised as comma-separated strings.
func arrayParamNames(desc Descriptor) []string {
	var out []string
	for _, p := range desc.Params {
		if p.Type == TypeStringArray {
			out = append(out, p.Name)
		}
	}
	return out
}

// splitCommaList splits a comma-separated list, trimming whitespace and
// dropping empty elements.
func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
