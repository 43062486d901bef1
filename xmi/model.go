// Package xmi extracts the class structure of a UML model exported as XMI:
// classes, their owned attributes, documentation, and generalization edges.
//
// Extraction never fails on missing data. Unnamed classes and attributes,
// and generalizations with an unresolvable end, are left out of the tables
// and recorded as diagnostics.
package xmi

import (
	"strings"

	"github.com/reoring/wmdrschema/diag"
	"github.com/reoring/wmdrschema/xmlnode"
)

// AggregationComposite is the UML aggregation kind that marks ownership.
const AggregationComposite = "composite"

const umlClass = "uml:Class"

// Attribute is one UML owned attribute.
type Attribute struct {
	ID          string
	Name        string
	TypeRef     string // identifier of another class, when the type is a modeled class
	Aggregation string
	// Lower and Upper are multiplicity endpoints as written in the model.
	// An empty string means the bound was absent.
	Lower string
	Upper string
}

// Required reports whether the lower bound makes the attribute mandatory.
func (a Attribute) Required() bool { return a.Lower != "" && a.Lower != "0" }

// MultiValued reports whether the upper bound allows more than one value.
func (a Attribute) MultiValued() bool { return a.Upper != "" && a.Upper != "1" }

// IsComposite reports whether the attribute is a composite aggregation.
func (a Attribute) IsComposite() bool { return a.Aggregation == AggregationComposite }

// Class is one named UML class with the attributes declared directly on it.
type Class struct {
	ID            string
	Name          string
	Attributes    []Attribute
	Documentation string
}

// Model holds the lookup tables built from one XMI document. It is not
// mutated after Extract returns.
type Model struct {
	// ClassIDs maps class name to identifier.
	ClassIDs map[string]string
	// ClassNames maps identifier to class name, for named classes only.
	ClassNames map[string]string
	// Attributes maps a class identifier to its own attributes in
	// declaration order.
	Attributes map[string][]Attribute
	// Documentation maps a class or attribute identifier to the first
	// comment body found for it, trimmed.
	Documentation map[string]string
	// Inheritance maps a subclass identifier to its superclass identifier.
	Inheritance map[string]string

	classes []*Class
	diag    *diag.Collector
}

// Classes returns the named classes in document order.
func (m *Model) Classes() []Class {
	out := make([]Class, 0, len(m.classes))
	for _, c := range m.classes {
		cc := *c
		cc.Attributes = append([]Attribute(nil), c.Attributes...)
		out = append(out, cc)
	}
	return out
}

// ClassName resolves an identifier to a class name.
func (m *Model) ClassName(id string) (string, bool) {
	name, ok := m.ClassNames[id]
	return name, ok
}

// ClassDoc returns the documentation recorded for the named class.
func (m *Model) ClassDoc(name string) string {
	id, ok := m.ClassIDs[name]
	if !ok {
		return ""
	}
	return m.Documentation[id]
}

// Extract walks the XMI tree rooted at root and builds the model tables.
// Diagnostics for skipped elements go to d, which may be nil.
func Extract(root *xmlnode.Node, d *diag.Collector) *Model {
	m := &Model{
		ClassIDs:      map[string]string{},
		ClassNames:    map[string]string{},
		Attributes:    map[string][]Attribute{},
		Documentation: map[string]string{},
		Inheritance:   map[string]string{},
		diag:          d,
	}
	root.Walk(func(n *xmlnode.Node) bool {
		if n.Local == "packagedElement" && xmiAttr(n, "type") == umlClass {
			m.addClass(n)
		}
		return true
	})
	root.Walk(func(n *xmlnode.Node) bool {
		if n.Local == "generalization" {
			m.addGeneralization(n)
		}
		return true
	})
	return m
}

func (m *Model) addClass(n *xmlnode.Node) {
	id := xmiAttr(n, "id")
	name, _ := n.Attr("name")
	if name == "" {
		m.diag.Warnf(diag.CodeUnnamedClass, id, "class without a name skipped")
		return
	}
	cls := &Class{ID: id, Name: name}
	m.ClassIDs[name] = id
	m.ClassNames[id] = name
	for _, sub := range n.Children {
		switch sub.Local {
		case "ownedAttribute":
			attr, ok := m.attribute(name, sub)
			if !ok {
				continue
			}
			cls.Attributes = append(cls.Attributes, attr)
		case "ownedComment":
			m.addDoc(id, sub)
		}
	}
	if cls.Attributes == nil {
		cls.Attributes = []Attribute{}
	}
	m.Attributes[id] = cls.Attributes
	cls.Documentation = m.Documentation[id]
	m.classes = append(m.classes, cls)
}

func (m *Model) attribute(className string, n *xmlnode.Node) (Attribute, bool) {
	name, ok := n.Attr("name")
	if !ok || name == "" {
		m.diag.Warnf(diag.CodeUnnamedAttribute, className, "attribute without a name skipped")
		return Attribute{}, false
	}
	attr := Attribute{
		ID:          xmiAttr(n, "id"),
		Name:        name,
		TypeRef:     attrOrChild(n, "type", "type", "idref"),
		Aggregation: plainAttr(n, "aggregation"),
		Lower:       attrOrChild(n, "lower", "lowerValue", "value"),
		Upper:       attrOrChild(n, "upper", "upperValue", "value"),
	}
	if c := n.Child("ownedComment"); c != nil && attr.ID != "" {
		m.addDoc(attr.ID, c)
	}
	return attr, true
}

// addDoc records the comment body under id unless id already has one.
func (m *Model) addDoc(id string, comment *xmlnode.Node) {
	if id == "" {
		return
	}
	if _, seen := m.Documentation[id]; seen {
		return
	}
	text := ""
	if body := comment.Find("body"); body != nil {
		text = strings.TrimSpace(body.Text)
	}
	if text == "" {
		v, _ := comment.Attr("body")
		text = strings.TrimSpace(v)
	}
	if text != "" {
		m.Documentation[id] = text
	}
}

func (m *Model) addGeneralization(n *xmlnode.Node) {
	sub := plainAttr(n, "owner")
	if sub == "" && n.Parent != nil {
		sub = xmiAttr(n.Parent, "id")
	}
	super := plainAttr(n, "general")
	if sub == "" || super == "" {
		m.diag.Warnf(diag.CodeUnresolvedGeneralization, xmiAttr(n, "id"),
			"generalization dropped (subclass %q, superclass %q)", sub, super)
		return
	}
	m.Inheritance[sub] = super
}

// IsXMINamespace accepts the namespace URIs used by XMI exporters, and the
// bare prefix when the document does not declare it.
func IsXMINamespace(space string) bool {
	return space == "xmi" || strings.Contains(strings.ToUpper(space), "XMI")
}

func xmiAttr(n *xmlnode.Node, local string) string {
	v, _ := n.AttrNS(IsXMINamespace, local)
	return v
}

func plainAttr(n *xmlnode.Node, local string) string {
	v, _ := n.Attr(local)
	return v
}

// attrOrChild reads the unqualified attribute name, falling back to the
// attribute childAttr (plain or xmi-qualified) of the first child element
// named child.
func attrOrChild(n *xmlnode.Node, name, child, childAttr string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	c := n.Child(child)
	if c == nil {
		return ""
	}
	if v, ok := c.Attr(childAttr); ok {
		return v
	}
	return xmiAttr(c, childAttr)
}
