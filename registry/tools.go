package registry

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/toolintrospect/introspection"
	"github.com/jonwraymond/toolintrospect/schema"
)

// Namespace is the toolfoundation namespace of every introspection tool.
const Namespace = "introspection"

// ExecuteInput is the argument shape of the execute tool.
type ExecuteInput struct {
	Query     string         `json:"query" jsonschema:"The GraphQL operation"`
	Variables map[string]any `json:"variables,omitempty" jsonschema:"The variable values for the operation"`
}

// IntrospectInput is the argument shape of the introspect tool.
type IntrospectInput struct {
	TypeName string `json:"type_name" jsonschema:"The name of the type to get information about"`
	Depth    uint   `json:"depth,omitempty" jsonschema:"How far to recurse the type hierarchy. Use 0 for no limit."`
}

// SearchInput is the argument shape of the search tool.
type SearchInput struct {
	Terms []string `json:"terms" jsonschema:"The search terms"`
}

// ValidateInput is the argument shape of the validate tool.
type ValidateInput struct {
	Operation string `json:"operation" jsonschema:"The GraphQL operation"`
}

const (
	executeDescription = "Execute a GraphQL operation. Use the `introspect` tool to get information about the GraphQL schema. " +
		"Always build operations from the schema; do not guess field names. " +
		"If the `validate` tool is available, validate operations before executing them."

	introspectDescription = "Get information about a given GraphQL type defined in the schema. " +
		"Use this tool before building an operation that references the type."

	searchDescription = "Search a GraphQL schema for types matching the provided search terms. " +
		"Returns type definitions including referenced types up to a depth of %d."

	validateDescription = "Validate a GraphQL operation against the schema. " +
		"Use the `introspect` tool first to learn the schema, and validate operations before calling the `execute` tool."

	minifiedNote = "Results use a minified SDL format without descriptions or whitespace."
)

// toolDef describes one introspection tool before registration.
type toolDef struct {
	name        string
	description string
	inputSchema map[string]any
	readOnly    bool
}

// buildDefs returns the definitions of the enabled tools in registration order.
// hints is appended to the execute description when non-empty.
func buildDefs(cfg introspection.Config, hints *string) []toolDef {
	defs := make([]toolDef, 0, 4)
	for _, name := range cfg.EnabledTools() {
		switch name {
		case introspection.ToolExecute:
			defs = append(defs, toolDef{
				name:        name,
				description: appendParagraph(executeDescription, hints),
				inputSchema: inputSchema[ExecuteInput]("query"),
			})
		case introspection.ToolIntrospect:
			desc := introspectDescription
			if cfg.Introspect.Minify {
				desc += " " + minifiedNote
			}
			defs = append(defs, toolDef{
				name:        name,
				description: desc,
				inputSchema: inputSchema[IntrospectInput]("type_name"),
				readOnly:    true,
			})
		case introspection.ToolSearch:
			desc := fmt.Sprintf(searchDescription, cfg.Search.LeafDepth)
			if cfg.Search.Minify {
				desc += " " + minifiedNote
			}
			defs = append(defs, toolDef{
				name:        name,
				description: desc,
				inputSchema: inputSchema[SearchInput]("terms"),
				readOnly:    true,
			})
		case introspection.ToolValidate:
			defs = append(defs, toolDef{
				name:        name,
				description: validateDescription,
				inputSchema: inputSchema[ValidateInput]("operation"),
				readOnly:    true,
			})
		}
	}
	return defs
}

// modelTool converts d into a validated toolfoundation tool.
func (d toolDef) modelTool() (model.Tool, error) {
	tool := model.Tool{
		Tool: mcp.Tool{
			Name:        d.name,
			Description: d.description,
			InputSchema: d.inputSchema,
		},
		Namespace: Namespace,
		Tags:      model.NormalizeTags([]string{"graphql", Namespace, d.name}),
	}
	if d.readOnly {
		tool.Annotations = &mcp.ToolAnnotations{ReadOnlyHint: true}
	}
	if err := tool.Validate(); err != nil {
		return model.Tool{}, fmt.Errorf("%w: %s: %w", ErrInvalidTool, d.name, err)
	}
	return tool, nil
}

// inputSchema projects T and marks the given properties required. Defaults
// are dropped: tool arguments have no configured defaults.
func inputSchema[T any](required ...string) map[string]any {
	doc := schema.For[T]()
	if props, ok := doc["properties"].(map[string]any); ok {
		for _, p := range props {
			if prop, ok := p.(map[string]any); ok {
				delete(prop, "default")
			}
		}
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

func appendParagraph(base string, extra *string) string {
	if extra == nil || strings.TrimSpace(*extra) == "" {
		return base
	}
	return base + "\n\n" + *extra
}

func hintsSource(cfg introspection.ExecuteConfig) string {
	switch {
	case cfg.HintsFile != nil:
		return "file"
	case cfg.Hints != nil:
		return "inline"
	default:
		return "none"
	}
}
