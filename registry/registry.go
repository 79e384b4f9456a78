package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/toolintrospect/introspection"
)

const tracerName = "github.com/jonwraymond/toolintrospect/registry"

// Config configures a Registry.
type Config struct {
	ServerInfo ServerInfo

	// Introspection selects and configures the tools.
	Introspection introspection.Config

	// ConfigDir is the base for a relative hints_file. Empty resolves it
	// against the working directory.
	ConfigDir string

	// Logger receives registration and hints diagnostics.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Tracer records the registration span.
	// If nil, the global tracer provider is used.
	Tracer trace.Tracer
}

// ServerInfo describes the MCP server created by NewServer.
type ServerInfo struct {
	Name    string
	Version string
}

// Registry holds the introspection tools registered for one server.
type Registry struct {
	mu     sync.RWMutex
	config Config
	logger *slog.Logger
	tracer trace.Tracer

	tools      []model.Tool
	handlers   map[string]ToolHandler
	registered bool
}

// New creates a new Registry with the given config.
func New(cfg Config) *Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &Registry{
		config:   cfg,
		logger:   logger,
		tracer:   tracer,
		handlers: make(map[string]ToolHandler),
	}
}

// Enabled reports whether the configuration enables any introspection tool.
func (r *Registry) Enabled() bool {
	return r.config.Introspection.AnyEnabled()
}

// Tools builds the definitions of the enabled tools, resolving hints from the
// configuration. It registers nothing.
func (r *Registry) Tools() ([]model.Tool, error) {
	cfg := r.config.Introspection
	if !cfg.AnyEnabled() {
		return nil, nil
	}

	var hints *string
	if cfg.Execute.Enabled {
		resolved, err := cfg.Execute.ResolveHints(r.config.ConfigDir, r.logger)
		if err != nil {
			return nil, err
		}
		hints = resolved
	}

	defs := buildDefs(cfg, hints)
	tools := make([]model.Tool, 0, len(defs))
	for _, def := range defs {
		tool, err := def.modelTool()
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}
	return tools, nil
}

// Register adds the enabled tools to server and returns how many were added.
//
// When no tool is enabled it registers nothing and returns 0. Every enabled
// tool needs a handler. Definitions are built before anything is added, so a
// hints or handler error leaves server untouched.
func (r *Registry) Register(ctx context.Context, server *mcp.Server, handlers Handlers) (int, error) {
	enabled := r.config.Introspection.EnabledTools()

	_, span := r.tracer.Start(ctx, "introspection.register",
		trace.WithAttributes(
			attribute.StringSlice("introspection.enabled_tools", enabled),
			attribute.String("introspection.hints_source", hintsSource(r.config.Introspection.Execute)),
		),
	)
	defer span.End()

	n, err := r.register(server, handlers, enabled)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	span.SetAttributes(attribute.Int("introspection.registered", n))
	return n, nil
}

func (r *Registry) register(server *mcp.Server, handlers Handlers, enabled []string) (int, error) {
	if len(enabled) == 0 {
		r.logger.Debug("no introspection tools enabled, skipping registration")
		return 0, nil
	}
	if server == nil {
		return 0, fmt.Errorf("%w: server is required", ErrInvalidRequest)
	}

	r.mu.RLock()
	registered := r.registered
	r.mu.RUnlock()
	if registered {
		return 0, ErrAlreadyRegistered
	}

	bound := make(map[string]ToolHandler, len(enabled))
	for _, name := range enabled {
		h := handlers.lookup(name)
		if h == nil {
			return 0, fmt.Errorf("%w: %s", ErrHandlerNotFound, name)
		}
		bound[name] = h
	}

	tools, err := r.Tools()
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	if r.registered {
		r.mu.Unlock()
		return 0, ErrAlreadyRegistered
	}
	r.tools = tools
	r.handlers = bound
	r.registered = true
	r.mu.Unlock()

	for _, tool := range tools {
		server.AddTool(&tool.Tool, r.mcpHandler(tool.Name))
	}

	r.logger.Info("registered introspection tools", "tools", enabled)
	return len(tools), nil
}

// ListAll returns the registered tools in registration order.
func (r *Registry) ListAll() []model.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.tools) == 0 {
		return nil
	}
	out := make([]model.Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Execute runs a registered tool by name with the given arguments.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	r.mu.RLock()
	handler, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	result, err := handler(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExecutionFailed, name, err)
	}
	return result, nil
}
