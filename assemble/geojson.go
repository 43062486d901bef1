package assemble

import js "github.com/reoring/wmdrschema/jsonschema"

// pointGeometry is a GeoJSON Point with two or three coordinates.
func pointGeometry() *js.Schema {
	props := js.NewMap()
	props.Set("type", js.Enum("Point"))
	props.Set("coordinates", &js.Schema{
		Type:     "array",
		Items:    &js.Schema{Type: "number"},
		MinItems: js.Int(2),
		MaxItems: js.Int(3),
	})
	return js.Object(props, []string{"type", "coordinates"})
}

// featureCollection is the GeoJSON envelope whose features point at the
// given geometry and properties schemas.
func featureCollection(geometryRef, propertiesRef string) *js.Schema {
	feature := js.NewMap()
	feature.Set("type", js.Enum("Feature"))
	feature.Set("geometry", js.Reference(geometryRef))
	feature.Set("properties", js.Reference(propertiesRef))

	props := js.NewMap()
	props.Set("type", js.Enum("FeatureCollection"))
	props.Set("features", js.ArrayOf(js.Object(feature, []string{"type", "geometry", "properties"})))
	return js.Object(props, []string{"type", "features"})
}
