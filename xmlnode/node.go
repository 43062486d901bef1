// Package xmlnode is a small, library-neutral view of a parsed XML document:
// every element becomes a Node with its resolved name, attributes, children,
// and direct character data. Extraction code walks Nodes and never touches
// the underlying parser's types.
package xmlnode

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"aqwari.net/xml/xmltree"
)

// Attr is one attribute with its namespace resolved to a URI when the
// document declares it, or left as the raw prefix otherwise.
type Attr struct {
	Space string
	Local string
	Value string
}

// Node is one XML element.
type Node struct {
	Space    string
	Local    string
	Attrs    []Attr
	Children []*Node
	Parent   *Node
	// Text is the element's own character data (children excluded), with
	// entities decoded and surrounding whitespace preserved.
	Text string
}

// Parse builds a Node tree from a complete XML document. A malformed
// document returns the parser's error wrapped with ErrMalformed. doc is not
// modified.
func Parse(doc []byte) (*Node, error) {
	// xmltree reuses its input as the buffer for charset conversion.
	root, err := xmltree.Parse(bytes.Clone(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return fromElement(root, nil), nil
}

// ErrMalformed marks input that could not be parsed as XML.
var ErrMalformed = errors.New("xmlnode: malformed document")

func fromElement(el *xmltree.Element, parent *Node) *Node {
	n := &Node{
		Space:  el.Name.Space,
		Local:  el.Name.Local,
		Parent: parent,
	}
	for _, a := range el.StartElement.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		n.Attrs = append(n.Attrs, Attr{Space: a.Name.Space, Local: a.Name.Local, Value: a.Value})
	}
	n.Text = charData(el.Content)
	n.Children = make([]*Node, 0, len(el.Children))
	for i := range el.Children {
		n.Children = append(n.Children, fromElement(&el.Children[i], n))
	}
	return n
}

// charData returns the top-level character data of raw element content.
func charData(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	if !bytes.ContainsAny(content, "<&") {
		return string(content)
	}
	dec := xml.NewDecoder(bytes.NewReader(content))
	dec.Strict = false
	dec.Entity = xml.HTMLEntity
	var b strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return string(content)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 {
				b.Write(t)
			}
		}
	}
	return b.String()
}

// Attr returns the value of the unqualified attribute local.
func (n *Node) Attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Space == "" && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrNS returns the value of the first attribute named local whose
// namespace satisfies inSpace.
func (n *Node) AttrNS(inSpace func(space string) bool, local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Space != "" && a.Local == local && inSpace(a.Space) {
			return a.Value, true
		}
	}
	return "", false
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the children of the node just visited.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first descendant (not n itself) with the given local
// name, in document order.
func (n *Node) Find(local string) *Node {
	var found *Node
	for _, c := range n.Children {
		c.Walk(func(x *Node) bool {
			if found != nil {
				return false
			}
			if x.Local == local {
				found = x
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// Child returns the first direct child with the given local name.
func (n *Node) Child(local string) *Node {
	for _, c := range n.Children {
		if c.Local == local {
			return c
		}
	}
	return nil
}
