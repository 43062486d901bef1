package jsonschema

// Draft202012 is the meta-schema URI emitted in "$schema".
const Draft202012 = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export. Field
// order is the serialization order.
type Schema struct {
	// Document
	Schema string `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	ID     string `json:"$id,omitempty" yaml:"$id,omitempty"`
	Ref    string `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`

	// Core
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string   `json:"format,omitempty" yaml:"format,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Enum        []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Object
	Properties *Map     `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string `json:"required,omitempty" yaml:"required,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`

	Defs *Map `json:"$defs,omitempty" yaml:"$defs,omitempty"`
}

// String returns {"type":"string"}.
func String() *Schema { return &Schema{Type: "string"} }

// Reference returns {"$ref": target}.
func Reference(target string) *Schema { return &Schema{Ref: target} }

// ArrayOf wraps items in an array schema.
func ArrayOf(items *Schema) *Schema { return &Schema{Type: "array", Items: items} }

// Enum returns a string schema restricted to values.
func Enum(values ...string) *Schema { return &Schema{Type: "string", Enum: values} }

// Object returns an object schema over props. An empty required list is
// left out of the output.
func Object(props *Map, required []string) *Schema {
	if props == nil {
		props = NewMap()
	}
	s := &Schema{Type: "object", Properties: props}
	if len(required) > 0 {
		s.Required = required
	}
	return s
}

// Int returns a pointer to n, for the minItems/maxItems fields.
func Int(n int) *int { return &n }
