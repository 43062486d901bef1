package jsonschema

import (
	"bytes"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Map is an insertion-ordered name -> schema mapping used for "properties"
// and "$defs". Setting an existing name replaces its value in place.
type Map struct {
	keys  []string
	byKey map[string]*Schema
}

func NewMap() *Map { return &Map{byKey: map[string]*Schema{}} }

func (m *Map) Set(name string, s *Schema) {
	if m.byKey == nil {
		m.byKey = map[string]*Schema{}
	}
	if _, ok := m.byKey[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.byKey[name] = s
}

func (m *Map) Get(name string) (*Schema, bool) {
	if m == nil {
		return nil, false
	}
	s, ok := m.byKey[name]
	return s, ok
}

func (m *Map) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Keys returns the names in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshalNoEscape(k)
		if err != nil {
			return nil, err
		}
		vb, err := marshalNoEscape(m.byKey[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (m *Map) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	if m == nil {
		return n, nil
	}
	for _, k := range m.keys {
		var v yaml.Node
		if err := v.Encode(m.byKey[k]); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, &v)
	}
	return n, nil
}
