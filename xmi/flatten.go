package xmi

import "github.com/reoring/wmdrschema/diag"

// Flatten returns the attributes of the named class followed by those of its
// superclass, its superclass's superclass, and so on. The walk stops at the
// first class without a recorded superclass, or when an identifier repeats.
// An unknown class yields an empty slice.
func (m *Model) Flatten(className string) []Attribute {
	id, ok := m.ClassIDs[className]
	if !ok {
		m.diag.Warnf(diag.CodeMissingClass, className, "class not found in model")
		return []Attribute{}
	}
	out := []Attribute{}
	visited := map[string]bool{}
	for id != "" {
		if visited[id] {
			m.diag.Warnf(diag.CodeInheritanceCycle, className, "generalization chain revisits %q", id)
			break
		}
		visited[id] = true
		out = append(out, m.Attributes[id]...)
		id = m.Inheritance[id]
	}
	return out
}

// Ancestors returns the superclass names of className, nearest first.
func (m *Model) Ancestors(className string) []string {
	id, ok := m.ClassIDs[className]
	if !ok {
		return nil
	}
	var out []string
	visited := map[string]bool{id: true}
	for {
		id = m.Inheritance[id]
		if id == "" || visited[id] {
			return out
		}
		visited[id] = true
		name, ok := m.ClassNames[id]
		if !ok {
			name = id
		}
		out = append(out, name)
	}
}
