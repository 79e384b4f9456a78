package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonwraymond/toolintrospect/introspection"
)

// File is a loaded server configuration file.
type File struct {
	Introspection introspection.Config `json:"introspection"`

	// Path is the path the file was loaded from, as given.
	Path string `json:"-"`

	// Dir is the absolute directory containing the file. Empty when parsed
	// from bytes without a path.
	Dir string `json:"-"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path from caller
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes data as a configuration file. path selects the format by
// extension and sets Dir; it is not read.
func Parse(data []byte, path string) (*File, error) {
	jsonData, err := toJSON(data, path)
	if err != nil {
		return nil, err
	}

	f := &File{
		Introspection: introspection.DefaultConfig(),
		Path:          path,
	}
	if err := json.Unmarshal(jsonData, f); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalidConfig, displayName(path), err)
	}

	if path != "" {
		dir, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("resolving config directory: %w", err)
		}
		f.Dir = dir
	}
	return f, nil
}

// ResolveHints resolves the execute tool hints relative to the file's
// directory.
func (f *File) ResolveHints(logger *slog.Logger) (*string, error) {
	return f.Introspection.Execute.ResolveHints(f.Dir, logger)
}

func toJSON(data []byte, path string) ([]byte, error) {
	if !isYAML(path) {
		return data, nil
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing YAML %s: %w", ErrInvalidConfig, displayName(path), err)
	}
	// yaml.v3 decodes mappings into map[string]any, which encodes as JSON.
	out, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: converting %s to JSON: %w", ErrInvalidConfig, displayName(path), err)
	}
	return out, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func displayName(path string) string {
	if path == "" {
		return "<input>"
	}
	return path
}
