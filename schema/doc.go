// Package schema projects Go configuration types into JSON Schema documents.
//
// Documents follow the draft-07 dialect and are returned as generic JSON data
// (map[string]any) so callers can embed them in tool descriptions, write them
// to disk, or transform them further.
//
// # Usage
//
//	doc := schema.For[introspection.Config]()
//	// doc["$schema"] == schema.Draft07
//
// Types are reflected with github.com/google/jsonschema-go. Field names come
// from json tags and descriptions from jsonschema tags. The generated document
// is then shaped to match how configuration is decoded:
//
//   - no property is required, since every field has a default
//   - additionalProperties is not restricted, since unknown fields are ignored
//   - each property's default is the value obtained by decoding {} into the
//     type, so defaults declared in a type's UnmarshalJSON appear here too
//
// # Failures
//
// A type that cannot be described (channels, functions, cyclic types) is a
// programming error. For and ForType panic rather than return an error.
//
// # Registry
//
// [Registry] maps stable names to types for tooling that publishes every
// schema at once:
//
//	reg := schema.NewRegistry()
//	_ = schema.Register[introspection.Config](reg, "introspection")
//	docs := reg.ProjectAll()
package schema
