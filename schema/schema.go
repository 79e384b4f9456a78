package schema

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"
)

// Draft07 is the $schema URI stamped on every generated document.
const Draft07 = "http://json-schema.org/draft-07/schema#"

// For returns the draft-07 schema document for T. It panics if T cannot be
// described.
func For[T any]() map[string]any {
	return ForType(reflect.TypeFor[T]())
}

// ForType returns the draft-07 schema document for t. It panics if t cannot be
// described.
func ForType(t reflect.Type) map[string]any {
	if t == nil {
		panic("schema: nil type")
	}

	s, err := jsonschema.ForType(t, &jsonschema.ForOptions{})
	if err != nil {
		panic(fmt.Sprintf("schema: failed to generate schema for %s: %v", t, err))
	}

	data, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("schema: failed to encode schema for %s: %v", t, err))
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		panic(fmt.Sprintf("schema: schema for %s is not a JSON object", t))
	}

	relax(doc)

	base := t
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if defaults, ok := defaultsFor(base); ok {
		applyDefaults(doc, defaults)
	}

	doc["$schema"] = Draft07
	if name := base.Name(); name != "" {
		doc["title"] = name
	}
	return doc
}

// relax removes required lists and closed additionalProperties throughout
// doc. Decoding accepts partial and over-complete objects, so the schema does
// too.
func relax(doc map[string]any) {
	delete(doc, "required")
	delete(doc, "additionalProperties")

	if props, ok := doc["properties"].(map[string]any); ok {
		for _, p := range props {
			if sub, ok := p.(map[string]any); ok {
				relax(sub)
			}
		}
	}
	if items, ok := doc["items"].(map[string]any); ok {
		relax(items)
	}
	for _, key := range []string{"$defs", "definitions"} {
		if defs, ok := doc[key].(map[string]any); ok {
			for _, d := range defs {
				if sub, ok := d.(map[string]any); ok {
					relax(sub)
				}
			}
		}
	}
}

// defaultsFor decodes an empty object into a new t and returns the result as
// JSON data. Types without a custom decoder yield their zero values.
func defaultsFor(t reflect.Type) (map[string]any, bool) {
	if t.Kind() != reflect.Struct {
		return nil, false
	}

	v := reflect.New(t)
	if err := json.Unmarshal([]byte(`{}`), v.Interface()); err != nil {
		return nil, false
	}
	data, err := json.Marshal(v.Elem().Interface())
	if err != nil {
		return nil, false
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}

func applyDefaults(doc map[string]any, defaults map[string]any) {
	props, ok := doc["properties"].(map[string]any)
	if !ok {
		return
	}
	for name, p := range props {
		prop, ok := p.(map[string]any)
		if !ok {
			continue
		}
		value, ok := defaults[name]
		if !ok {
			continue
		}
		prop["default"] = value
		if nested, ok := value.(map[string]any); ok {
			applyDefaults(prop, nested)
		}
	}
}
