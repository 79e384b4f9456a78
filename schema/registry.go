package schema

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Registry maps schema names to the Go types they describe.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]reflect.Type),
	}
}

// Register adds T to r under name.
func Register[T any](r *Registry, name string) error {
	return r.Register(name, reflect.TypeFor[T]())
}

// Register adds t to r under name. Names must be non-empty and unique.
func (r *Registry) Register(name string, t reflect.Type) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if t == nil {
		return fmt.Errorf("%w: %s has no type", ErrInvalidName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateType, name)
	}
	r.types[name] = t
	return nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Project returns the schema document for the type registered under name.
// Unknown names return ErrUnknownType; generation defects panic as in ForType.
func (r *Registry) Project(name string) (map[string]any, error) {
	t, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return ForType(t), nil
}

// ProjectAll returns the schema document of every registered type keyed by
// name.
func (r *Registry) ProjectAll() map[string]map[string]any {
	names := r.Names()
	out := make(map[string]map[string]any, len(names))
	for _, name := range names {
		t, _ := r.Lookup(name)
		out[name] = ForType(t)
	}
	return out
}
