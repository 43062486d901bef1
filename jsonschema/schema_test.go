package jsonschema

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// normalize marshals v to JSON and unmarshals back into interface{} to remove ordering effects.
func normalize(t *testing.T, v any) any {
	t.Helper()
	b, err := gojson.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", b, err)
	}
	return out
}

func TestSchema_Fragments(t *testing.T) {
	props := NewMap()
	props.Set("name", String())
	props.Set("parts", ArrayOf(Reference("#/$defs/Part")))
	obj := Object(props, []string{"name"})
	obj.Title = "Thing"

	got := normalize(t, obj)
	want := normalize(t, map[string]any{
		"title": "Thing",
		"type":  "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"parts": map[string]any{"type": "array", "items": map[string]any{"$ref": "#/$defs/Part"}},
		},
		"required": []any{"name"},
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("object schema mismatch\n got=%v\nwant=%v", got, want)
	}

	empty := normalize(t, Object(nil, nil))
	if !reflect.DeepEqual(empty, map[string]any{"type": "object", "properties": map[string]any{}}) {
		t.Fatalf("empty object should keep an empty properties map and drop required: %v", empty)
	}
}

func TestMap_PreservesInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("zeta", String())
	m.Set("alpha", &Schema{Type: "number"})
	m.Set("mid", String())
	m.Set("zeta", &Schema{Type: "boolean"}) // replaced in place

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"zeta", "alpha", "mid"}) {
		t.Fatalf("keys = %v", got)
	}
	b, err := gojson.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"zeta":{"type":"boolean"},"alpha":{"type":"number"},"mid":{"type":"string"}}`
	if string(b) != want {
		t.Fatalf("json order mismatch\n got=%s\nwant=%s", b, want)
	}

	y, err := yaml.Marshal(&Schema{Properties: m})
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	out := string(y)
	if !(strings.Index(out, "zeta") < strings.Index(out, "alpha") && strings.Index(out, "alpha") < strings.Index(out, "mid")) {
		t.Fatalf("yaml order mismatch:\n%s", out)
	}
}

func TestMarshal_DoesNotEscapeHTML(t *testing.T) {
	m := NewMap()
	m.Set("a", &Schema{Type: "string", Description: "x < y & z"})
	b, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), "x < y & z") {
		t.Fatalf("description escaped: %s", b)
	}
}

func TestWalk_Pointers(t *testing.T) {
	defs := NewMap()
	inner := NewMap()
	inner.Set("a/b", Reference("#/$defs/X"))
	defs.Set("Y", Object(inner, nil))
	root := &Schema{Type: "object", Properties: NewMap(), Defs: defs}
	root.Properties.Set("list", ArrayOf(Reference("#/$defs/Y")))

	var ptrs []string
	Walk(root, func(ptr string, s *Schema) {
		if s.Ref != "" {
			ptrs = append(ptrs, ptr)
		}
	})
	want := []string{"/properties/list/items", "/$defs/Y/properties/a~1b"}
	if !reflect.DeepEqual(ptrs, want) {
		t.Fatalf("pointers = %v want %v", ptrs, want)
	}
}
