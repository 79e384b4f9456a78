package registry

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server described by the configured ServerInfo and
// registers the enabled introspection tools on it. A server with no tools is
// returned when the group is disabled.
func (r *Registry) NewServer(ctx context.Context, handlers Handlers) (*mcp.Server, error) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    r.config.ServerInfo.Name,
		Version: r.config.ServerInfo.Version,
	}, nil)

	if _, err := r.Register(ctx, server, handlers); err != nil {
		return nil, err
	}
	return server, nil
}

// ServeStdio runs the registry as an MCP server over stdio.
// Blocks until the client disconnects or ctx is cancelled.
func ServeStdio(ctx context.Context, r *Registry, handlers Handlers) error {
	server, err := r.NewServer(ctx, handlers)
	if err != nil {
		return err
	}
	return server.Run(ctx, &mcp.StdioTransport{})
}

// ServeHTTP returns an http.Handler serving server over the streamable HTTP
// transport.
func ServeHTTP(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
