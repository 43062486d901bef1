package jsonschema

import "strings"

// Walk calls fn for s and every schema nested under properties, items, and
// $defs, passing the JSON Pointer of each relative to s.
func Walk(s *Schema, fn func(ptr string, s *Schema)) {
	walk("", s, fn)
}

func walk(ptr string, s *Schema, fn func(string, *Schema)) {
	if s == nil {
		return
	}
	fn(ptr, s)
	for _, k := range s.Properties.Keys() {
		sub, _ := s.Properties.Get(k)
		walk(ptr+"/properties/"+escapeToken(k), sub, fn)
	}
	walk(ptr+"/items", s.Items, fn)
	for _, k := range s.Defs.Keys() {
		sub, _ := s.Defs.Get(k)
		walk(ptr+"/$defs/"+escapeToken(k), sub, fn)
	}
}

var tokenEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapeToken(s string) string { return tokenEscaper.Replace(s) }
