// Package cli implements the introspect command line.
//
// Commands:
//   - schema [name]: print the JSON Schema (draft-07) of a configuration type
//   - check <config-file>: load a configuration file and report the enabled
//     introspection tools and whether their hints resolve
//
// Commands return *ExitError to select the process exit code: 1 for file and
// parse failures, 2 for an unknown schema name, 3 when the hints file cannot
// be read.
package cli
