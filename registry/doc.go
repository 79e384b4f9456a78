// Package registry advertises the introspection tool group on an MCP server.
//
// Registry turns an introspection.Config into toolfoundation model.Tool
// definitions and registers them, together with caller-supplied handlers, on a
// github.com/modelcontextprotocol/go-sdk server. The handlers do the actual
// GraphQL work; this package only decides what is advertised and how it is
// described.
//
// Features:
//   - Whole-group gating: nothing is registered unless Config.AnyEnabled
//   - Execute tool description extended with resolved hints
//   - Input schemas generated from Go argument types (draft-07)
//   - Stdio and streamable HTTP serving
//   - One OpenTelemetry span per registration
//
// Example usage:
//
//	reg := registry.New(registry.Config{
//	    ServerInfo:    registry.ServerInfo{Name: "graphql-mcp", Version: "1.0.0"},
//	    Introspection: file.Introspection,
//	    ConfigDir:     file.Dir,
//	})
//
//	srv, err := reg.NewServer(ctx, registry.Handlers{
//	    Execute:    executeEngine,
//	    Introspect: introspectEngine,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = srv.Run(ctx, &mcp.StdioTransport{})
//
// A hints file that cannot be read fails registration and nothing is
// registered; the caller decides whether that aborts startup.
package registry
