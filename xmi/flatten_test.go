package xmi

import (
	"reflect"
	"testing"

	"github.com/reoring/wmdrschema/diag"
)

func TestFlatten_SubclassFirst(t *testing.T) {
	m, _ := loadModel(t, "testdata/facility.xmi")

	got := names(m.Flatten("ObservingFacility"))
	want := []string{"name", "geospatialLocation", "equipment", "elevation", "identifier", "name"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flatten mismatch\n got=%v\nwant=%v", got, want)
	}

	got = names(m.Flatten("Equipment"))
	want = []string{"serialNumber", "identifier", "name"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flatten via owner attribute mismatch\n got=%v\nwant=%v", got, want)
	}

	if got := m.Ancestors("ObservingFacility"); !reflect.DeepEqual(got, []string{"AbstractFacility"}) {
		t.Fatalf("ancestors = %v", got)
	}
}

func TestFlatten_NoInheritanceKeepsDeclarationOrder(t *testing.T) {
	m, _ := parseModel(t, `<XMI xmlns:xmi="http://www.omg.org/XMI">
  <packagedElement xmi:type="uml:Class" xmi:id="1" name="ObservingFacility">
    <ownedAttribute name="c"/><ownedAttribute name="a"/><ownedAttribute name="b"/>
  </packagedElement>
  <packagedElement xmi:type="uml:Class" xmi:id="2" name="Equipment">
    <ownedAttribute name="z"/>
  </packagedElement>
  <packagedElement xmi:type="uml:Class" xmi:id="3" name="Observation"/>
</XMI>`)
	for name, want := range map[string][]string{
		"ObservingFacility": {"c", "a", "b"},
		"Equipment":         {"z"},
		"Observation":       {},
	} {
		if got := names(m.Flatten(name)); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: got %v want %v", name, got, want)
		}
	}
}

func TestFlatten_Transitive(t *testing.T) {
	m, _ := parseModel(t, `<XMI xmlns:xmi="http://www.omg.org/XMI">
  <packagedElement xmi:type="uml:Class" xmi:id="A" name="A"><ownedAttribute name="a"/></packagedElement>
  <packagedElement xmi:type="uml:Class" xmi:id="B" name="B">
    <generalization general="A"/><ownedAttribute name="b"/>
  </packagedElement>
  <packagedElement xmi:type="uml:Class" xmi:id="C" name="C">
    <generalization general="B"/><ownedAttribute name="c"/>
  </packagedElement>
</XMI>`)
	if got := names(m.Flatten("C")); !reflect.DeepEqual(got, []string{"c", "b", "a"}) {
		t.Fatalf("transitive flatten = %v", got)
	}
	if got := m.Ancestors("C"); !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Fatalf("ancestors = %v", got)
	}
}

func TestFlatten_CycleTerminates(t *testing.T) {
	m, d := parseModel(t, `<XMI xmlns:xmi="http://www.omg.org/XMI">
  <packagedElement xmi:type="uml:Class" xmi:id="A" name="A">
    <generalization general="B"/><ownedAttribute name="a"/>
  </packagedElement>
  <packagedElement xmi:type="uml:Class" xmi:id="B" name="B">
    <generalization general="A"/><ownedAttribute name="b"/>
  </packagedElement>
</XMI>`)
	if got := names(m.Flatten("A")); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("cyclic flatten = %v", got)
	}
	if len(d.Issues().WithCode(diag.CodeInheritanceCycle)) != 1 {
		t.Fatalf("expected one cycle diagnostic, got %v", d.Issues())
	}
	if got := m.Ancestors("A"); !reflect.DeepEqual(got, []string{"B"}) {
		t.Fatalf("ancestors on a cycle = %v", got)
	}
}

func TestFlatten_UnknownClass(t *testing.T) {
	m, d := parseModel(t, `<XMI/>`)
	got := m.Flatten("Observation")
	if got == nil || len(got) != 0 {
		t.Fatalf("unknown class should flatten to an empty slice, got %#v", got)
	}
	if len(d.Issues().WithCode(diag.CodeMissingClass)) != 1 {
		t.Fatalf("expected missing_class diagnostic")
	}
}
