package registry

import (
	"context"

	"github.com/jonwraymond/toolintrospect/introspection"
)

// ToolHandler executes an introspection tool with the given arguments.
// It receives a context for cancellation and a map of arguments parsed from the MCP request.
// String results are returned to the client as text; other values are encoded as JSON.
type ToolHandler func(ctx context.Context, args map[string]any) (any, error)

// Handlers supplies the engine behind each tool. Only handlers for enabled
// tools are required.
type Handlers struct {
	Execute    ToolHandler
	Introspect ToolHandler
	Search     ToolHandler
	Validate   ToolHandler
}

// lookup returns the handler for the named tool.
func (h Handlers) lookup(name string) ToolHandler {
	switch name {
	case introspection.ToolExecute:
		return h.Execute
	case introspection.ToolIntrospect:
		return h.Introspect
	case introspection.ToolSearch:
		return h.Search
	case introspection.ToolValidate:
		return h.Validate
	default:
		return nil
	}
}
