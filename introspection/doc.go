// Package introspection holds the configuration for the introspection tool
// group of a GraphQL MCP server.
//
// The group has four independent tools, each with its own option record:
//
//   - execute: runs operations; carries free-text hints for the tool description
//   - introspect: answers schema introspection requests
//   - search: searches the schema (index memory and leaf depth are sized here)
//   - validate: checks operations before execution
//
// # Defaults
//
// Every field has a default and no field is required. Defaults are defined
// once, in [DefaultConfig] and the per-tool constructors, and every record's
// UnmarshalJSON starts from its constructor, so a document that omits a field
// (or a whole record) decodes to the default value for it:
//
//	var cfg introspection.Config
//	err := json.Unmarshal([]byte(`{"search": {"enabled": true}}`), &cfg)
//	// cfg.Search.IndexMemoryBytes == 50_000_000, cfg.Search.LeafDepth == 1
//
// The Go zero value of [SearchConfig] is not its default; use [DefaultConfig]
// or [DefaultSearchConfig] when building a record in code.
//
// # Hints
//
// [ExecuteConfig.ResolveHints] produces the text appended to the execute tool
// description. A configured hints_file always wins over inline hints, is read
// relative to the configuration directory when one is given, and is re-read on
// every call. A hints file that cannot be read fails the resolution; inline
// hints are never used as a fallback.
//
// # Registration
//
// [Config.AnyEnabled] reports whether any of the four tools is enabled. Hosts
// skip registering the whole group when it returns false.
//
// # Thread Safety
//
// Records are plain values and are not mutated after decoding; they may be
// shared for concurrent reads.
package introspection
