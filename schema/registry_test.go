package schema

import (
	"errors"
	"reflect"
	"testing"
)

type sample struct {
	Enabled bool `json:"enabled"`
}

func TestRegistry_RegisterAndProject(t *testing.T) {
	reg := NewRegistry()
	if err := Register[sample](reg, "sample"); err != nil {
		t.Fatalf("Register error = %v", err)
	}

	typ, ok := reg.Lookup("sample")
	if !ok || typ != reflect.TypeFor[sample]() {
		t.Errorf("Lookup = %v, %v", typ, ok)
	}

	doc, err := reg.Project("sample")
	if err != nil {
		t.Fatalf("Project error = %v", err)
	}
	if doc["$schema"] != Draft07 {
		t.Errorf("$schema = %v, want %s", doc["$schema"], Draft07)
	}
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register("", reflect.TypeFor[sample]()); !errors.Is(err, ErrInvalidName) {
		t.Errorf("empty name error = %v, want ErrInvalidName", err)
	}
	if err := reg.Register("nil", nil); !errors.Is(err, ErrInvalidName) {
		t.Errorf("nil type error = %v, want ErrInvalidName", err)
	}

	_ = Register[sample](reg, "sample")
	if err := Register[sample](reg, "sample"); !errors.Is(err, ErrDuplicateType) {
		t.Errorf("duplicate error = %v, want ErrDuplicateType", err)
	}

	if _, err := reg.Project("missing"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("Project missing error = %v, want ErrUnknownType", err)
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := NewRegistry()
	_ = Register[sample](reg, "zeta")
	_ = Register[sample](reg, "alpha")
	_ = Register[sample](reg, "mid")

	want := []string{"alpha", "mid", "zeta"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistry_ProjectAll(t *testing.T) {
	reg := NewRegistry()
	_ = Register[sample](reg, "a")
	_ = Register[sample](reg, "b")

	all := reg.ProjectAll()
	if len(all) != 2 {
		t.Fatalf("ProjectAll returned %d documents, want 2", len(all))
	}
	for name, doc := range all {
		if doc["title"] != "sample" {
			t.Errorf("%s title = %v, want sample", name, doc["title"])
		}
	}
}
