package introspection

import "encoding/json"

// Tool names, in registration order.
const (
	ToolExecute    = "execute"
	ToolIntrospect = "introspect"
	ToolSearch     = "search"
	ToolValidate   = "validate"
)

const (
	// DefaultIndexMemoryBytes is the default search index memory budget.
	DefaultIndexMemoryBytes uint = 50_000_000
	// DefaultLeafDepth is the default depth of referenced types included in
	// search results.
	DefaultLeafDepth uint = 1
)

// Config is the introspection section of the server configuration.
type Config struct {
	Execute    ExecuteConfig    `json:"execute" jsonschema:"Execution configuration for introspection"`
	Introspect IntrospectConfig `json:"introspect" jsonschema:"Introspect configuration for allowing clients to run introspection"`
	Search     SearchConfig     `json:"search" jsonschema:"Search tool configuration"`
	Validate   ValidateConfig   `json:"validate" jsonschema:"Validate configuration for checking operations before execution"`
}

// ExecuteConfig configures the execute tool.
type ExecuteConfig struct {
	Enabled bool `json:"enabled" jsonschema:"Enable introspection for execution"`

	// Hints is appended to the execute tool description.
	Hints *string `json:"hints,omitempty" jsonschema:"Additional hints to append to the execute tool description"`

	// HintsFile names a file whose contents replace Hints. Relative paths are
	// resolved against the configuration directory.
	HintsFile *string `json:"hints_file,omitempty" jsonschema:"Path to a file containing additional hints to append to the execute tool description. If both hints and hints_file are provided, hints_file takes precedence. Path is relative to the configuration file location."`
}

// IntrospectConfig configures the introspect tool.
type IntrospectConfig struct {
	Enabled bool `json:"enabled" jsonschema:"Enable introspection requests"`
	Minify  bool `json:"minify" jsonschema:"Minify introspection results"`
}

// SearchConfig configures the search tool.
type SearchConfig struct {
	Enabled bool `json:"enabled" jsonschema:"Enable search tool"`

	// IndexMemoryBytes bounds the memory the search engine may use for its
	// index. Default: 50,000,000.
	IndexMemoryBytes uint `json:"index_memory_bytes" jsonschema:"The amount of memory used for indexing (in bytes)"`

	// LeafDepth is the depth of subtype information included from matching
	// types. 1 is just the matching type. Default: 1.
	LeafDepth uint `json:"leaf_depth" jsonschema:"The depth of subtype information to include from matching types (1 is just the matching type, 2 is the matching type plus the types it references, etc.)"`

	Minify bool `json:"minify" jsonschema:"Minify search results"`
}

// ValidateConfig configures the validate tool.
type ValidateConfig struct {
	Enabled bool `json:"enabled" jsonschema:"Enable validation tool"`
}

// DefaultConfig returns the configuration used when nothing is configured:
// every tool disabled, no hints.
func DefaultConfig() Config {
	return Config{
		Execute:    DefaultExecuteConfig(),
		Introspect: DefaultIntrospectConfig(),
		Search:     DefaultSearchConfig(),
		Validate:   DefaultValidateConfig(),
	}
}

// DefaultExecuteConfig returns the default execute options.
func DefaultExecuteConfig() ExecuteConfig {
	return ExecuteConfig{}
}

// DefaultIntrospectConfig returns the default introspect options.
func DefaultIntrospectConfig() IntrospectConfig {
	return IntrospectConfig{}
}

// DefaultSearchConfig returns the default search options.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		IndexMemoryBytes: DefaultIndexMemoryBytes,
		LeafDepth:        DefaultLeafDepth,
	}
}

// DefaultValidateConfig returns the default validate options.
func DefaultValidateConfig() ValidateConfig {
	return ValidateConfig{}
}

// AnyEnabled reports whether at least one introspection tool is enabled.
func (c Config) AnyEnabled() bool {
	return c.Execute.Enabled || c.Introspect.Enabled || c.Search.Enabled || c.Validate.Enabled
}

// EnabledTools returns the names of the enabled tools in registration order.
func (c Config) EnabledTools() []string {
	var names []string
	if c.Execute.Enabled {
		names = append(names, ToolExecute)
	}
	if c.Introspect.Enabled {
		names = append(names, ToolIntrospect)
	}
	if c.Search.Enabled {
		names = append(names, ToolSearch)
	}
	if c.Validate.Enabled {
		names = append(names, ToolValidate)
	}
	return names
}

// UnmarshalJSON decodes c, taking defaults for every missing field.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	out := plain(DefaultConfig())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*c = Config(out)
	return nil
}

// UnmarshalJSON decodes c, taking defaults for every missing field.
func (c *ExecuteConfig) UnmarshalJSON(data []byte) error {
	type plain ExecuteConfig
	out := plain(DefaultExecuteConfig())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*c = ExecuteConfig(out)
	return nil
}

// UnmarshalJSON decodes c, taking defaults for every missing field.
func (c *IntrospectConfig) UnmarshalJSON(data []byte) error {
	type plain IntrospectConfig
	out := plain(DefaultIntrospectConfig())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*c = IntrospectConfig(out)
	return nil
}

// UnmarshalJSON decodes c, taking defaults for every missing field.
func (c *SearchConfig) UnmarshalJSON(data []byte) error {
	type plain SearchConfig
	out := plain(DefaultSearchConfig())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*c = SearchConfig(out)
	return nil
}

// UnmarshalJSON decodes c, taking defaults for every missing field.
func (c *ValidateConfig) UnmarshalJSON(data []byte) error {
	type plain ValidateConfig
	out := plain(DefaultValidateConfig())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*c = ValidateConfig(out)
	return nil
}
