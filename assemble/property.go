package assemble

import (
	"github.com/reoring/wmdrschema/diag"
	js "github.com/reoring/wmdrschema/jsonschema"
	"github.com/reoring/wmdrschema/typehint"
	"github.com/reoring/wmdrschema/xmi"
)

// Property derives the JSON Schema fragment for one attribute of owner.
//
// A composite attribute typed by a known class becomes a reference to that
// class. Otherwise an XSD hint for the attribute name selects a primitive
// fragment, and with no hint the attribute is a string. Multi-valued
// attributes wrap the reference or primitive in an array.
func (a *Assembler) Property(owner string, attr xmi.Attribute) *js.Schema {
	path := owner + "/" + attr.Name
	if attr.IsComposite() {
		if target, ok := a.model.ClassName(attr.TypeRef); ok {
			return many(attr, js.Reference(a.refTo(target)))
		}
	}
	primitive, ok := a.hints.Lookup(attr.Name)
	if !ok {
		a.diag.Warnf(diag.CodeMissingTypeHint, path, "no XSD element named %q; using string", attr.Name)
		return js.String()
	}
	if !typehint.Known(primitive) {
		a.diag.Warnf(diag.CodeUnknownPrimitive, path, "XSD type %q has no JSON mapping; using string", primitive)
	}
	return many(attr, typehint.Fragment(primitive))
}

func many(attr xmi.Attribute, s *js.Schema) *js.Schema {
	if attr.MultiValued() {
		return js.ArrayOf(s)
	}
	return s
}

// Properties builds the property map and required list for attrs, skipping
// names in exclude. When a name occurs more than once the later fragment
// replaces the earlier one in the earlier position; the name is required
// when any occurrence is.
func (a *Assembler) Properties(owner string, attrs []xmi.Attribute, exclude ...string) (*js.Map, []string) {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}
	props := js.NewMap()
	required := []string{}
	seen := map[string]bool{}
	for _, attr := range attrs {
		if attr.Name == "" || skip[attr.Name] {
			continue
		}
		prop := a.Property(owner, attr)
		if doc := a.model.Documentation[attr.ID]; attr.ID != "" && doc != "" {
			prop.Description = doc
		}
		props.Set(attr.Name, prop)
		if attr.Required() && !seen[attr.Name] {
			seen[attr.Name] = true
			required = append(required, attr.Name)
		}
	}
	return props, required
}

// classSchema builds the object schema for a class from its flattened
// attributes.
func (a *Assembler) classSchema(name string, withRequired bool, exclude ...string) *js.Schema {
	props, required := a.Properties(name, a.model.Flatten(name), exclude...)
	if !withRequired {
		required = nil
	}
	s := js.Object(props, required)
	s.Description = a.model.ClassDoc(name)
	return s
}
