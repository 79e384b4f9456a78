package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// mcpHandler adapts the registered handler for name to the go-sdk handler
// signature. Handler failures are reported as tool errors, not protocol errors.
func (r *Registry) mcpHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any
		if req != nil && req.Params != nil && len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return errorResult(fmt.Errorf("%w: arguments: %v", ErrInvalidRequest, err)), nil
			}
		}

		result, err := r.Execute(ctx, name, args)
		if err != nil {
			return errorResult(err), nil
		}
		return toolResult(result)
	}
}

func toolResult(value any) (*mcp.CallToolResult, error) {
	switch v := value.(type) {
	case nil:
		return &mcp.CallToolResult{Content: []mcp.Content{}}, nil
	case *mcp.CallToolResult:
		return v, nil
	case string:
		return textResult(v), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return errorResult(fmt.Errorf("%w: encoding result: %v", ErrExecutionFailed, err)), nil
		}
		return textResult(string(data)), nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}
