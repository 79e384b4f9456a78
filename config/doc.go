// Package config loads the server configuration file that carries the
// introspection section.
//
// Files are YAML (.yaml, .yml) or JSON (anything else). YAML is converted to
// JSON before decoding so defaults come from a single decode path, the
// introspection records' UnmarshalJSON methods:
//
//	f, err := config.Load("/etc/graphql-mcp/server.yaml")
//	if err != nil {
//	    return err
//	}
//	if !f.Introspection.AnyEnabled() {
//	    return nil
//	}
//	hints, err := f.ResolveHints(logger)
//
// The directory of the loaded file is recorded in File.Dir and is the base for
// relative hints_file paths. Other top-level sections are ignored.
package config
