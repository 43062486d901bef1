// Package typehint reads primitive-type hints from an XSD and maps XSD
// primitive names onto JSON Schema fragments.
//
// Hints are keyed by element name only: the XSD is treated as one global
// namespace of names, independent of the class an attribute belongs to.
package typehint

import (
	"strings"

	js "github.com/reoring/wmdrschema/jsonschema"
	"github.com/reoring/wmdrschema/xmlnode"
)

// Hints maps an element name to its XSD primitive type name, namespace
// prefix removed.
type Hints map[string]string

// Build collects every element declaration that carries both a name and a
// type. A later declaration of the same name replaces an earlier one.
func Build(root *xmlnode.Node) Hints {
	h := Hints{}
	root.Walk(func(n *xmlnode.Node) bool {
		if n.Local != "element" {
			return true
		}
		name, _ := n.Attr("name")
		typ, _ := n.Attr("type")
		if name == "" || typ == "" {
			return true
		}
		if _, local, ok := strings.Cut(typ, ":"); ok {
			typ = local
		}
		h[name] = typ
		return true
	})
	return h
}

// Lookup returns the primitive type name hinted for an attribute name.
func (h Hints) Lookup(name string) (string, bool) {
	t, ok := h[name]
	return t, ok
}

type fragment struct {
	typ    string
	format string
}

// primitives is read-only after package initialization.
var primitives = map[string]fragment{
	"boolean":  {typ: "boolean"},
	"string":   {typ: "string"},
	"decimal":  {typ: "number"},
	"float":    {typ: "number"},
	"double":   {typ: "number"},
	"int":      {typ: "integer"},
	"integer":  {typ: "integer"},
	"date":     {typ: "string", format: "date"},
	"dateTime": {typ: "string", format: "date-time"},
}

// Known reports whether primitive has an entry in the primitive table.
func Known(primitive string) bool {
	_, ok := primitives[primitive]
	return ok
}

// Fragment returns a fresh JSON Schema fragment for an XSD primitive name.
// Unknown names map to a string fragment. Callers own the returned value.
func Fragment(primitive string) *js.Schema {
	f, ok := primitives[primitive]
	if !ok {
		return js.String()
	}
	return &js.Schema{Type: f.typ, Format: f.format}
}
