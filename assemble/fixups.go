package assemble

import js "github.com/reoring/wmdrschema/jsonschema"

// collectionFixups names ObservingFacility properties that always hold a
// list of another target class, whatever the generic inference produced.
var collectionFixups = []struct {
	property string
	class    string
}{
	{property: "equipment", class: Equipment},
	{property: "observation", class: Observation},
}

// applyCollectionFixups rewrites each present fixup property to an array of
// references to its class. Absent properties are not added.
func applyCollectionFixups(props *js.Map, refTo func(string) string) {
	for _, f := range collectionFixups {
		if props.Has(f.property) {
			props.Set(f.property, js.ArrayOf(js.Reference(refTo(f.class))))
		}
	}
}
