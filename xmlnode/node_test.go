package xmlnode

import (
	"bytes"
	"errors"
	"testing"
)

const sample = `<?xml version="1.0"?>
<root xmlns:xmi="http://www.omg.org/XMI" xmlns:uml="http://www.omg.org/UML">
  <packagedElement xmi:type="uml:Class" xmi:id="C1" name="Thing">
    <ownedComment><body> a &amp; b </body></ownedComment>
  </packagedElement>
  <other name="x"/>
</root>`

func TestParse_ResolvesNamesAndText(t *testing.T) {
	root, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if root.Local != "root" {
		t.Fatalf("root local = %q", root.Local)
	}
	for _, a := range root.Attrs {
		if a.Space == "xmlns" {
			t.Fatalf("namespace declarations should not be exposed as attributes: %+v", a)
		}
	}
	cls := root.Child("packagedElement")
	if cls == nil {
		t.Fatalf("packagedElement not found")
	}
	if cls.Parent != root {
		t.Fatalf("parent link not set")
	}
	name, ok := cls.Attr("name")
	if !ok || name != "Thing" {
		t.Fatalf("name attr = %q, %v", name, ok)
	}
	isXMI := func(space string) bool { return space == "http://www.omg.org/XMI" }
	if typ, ok := cls.AttrNS(isXMI, "type"); !ok || typ != "uml:Class" {
		t.Fatalf("xmi:type = %q, %v", typ, ok)
	}
	if _, ok := cls.Attr("type"); ok {
		t.Fatalf("unqualified lookup must not match xmi:type")
	}
	body := cls.Find("body")
	if body == nil {
		t.Fatalf("body not found")
	}
	if body.Text != " a & b " {
		t.Fatalf("body text = %q", body.Text)
	}
}

func TestWalk_DocumentOrderAndSkip(t *testing.T) {
	root, err := Parse([]byte(`<a><b><c/></b><d/></a>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var seen []string
	root.Walk(func(n *Node) bool {
		seen = append(seen, n.Local)
		return true
	})
	if got, want := len(seen), 4; got != want {
		t.Fatalf("visited %d nodes, want %d: %v", got, want, seen)
	}
	if seen[0] != "a" || seen[1] != "b" || seen[2] != "c" || seen[3] != "d" {
		t.Fatalf("order mismatch: %v", seen)
	}

	seen = nil
	root.Walk(func(n *Node) bool {
		seen = append(seen, n.Local)
		return n.Local != "b"
	})
	if len(seen) != 3 {
		t.Fatalf("skip children failed: %v", seen)
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`<a><b></a>`))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("error should wrap ErrMalformed: %v", err)
	}
}

func TestParse_LeavesInputUntouched(t *testing.T) {
	// 0xe9 is "é" in windows-1252 and invalid as UTF-8.
	doc := []byte("<?xml version=\"1.0\" encoding=\"windows-1252\"?>\n<root name=\"caf\xe9\">d\xe9j\xe0</root>")
	orig := append([]byte(nil), doc...)
	_, _ = Parse(doc)
	if !bytes.Equal(doc, orig) {
		t.Fatalf("input modified:\n got=%q\nwant=%q", doc, orig)
	}
}
