package wmdrschema

// Package wmdrschema converts a UML class model exported as XMI, together
// with an XSD used for primitive-type hints, into JSON Schema (draft 2020-12)
// for a GeoJSON FeatureCollection of ObservingFacility features with nested
// Equipment and Observation structures.
//
// Design policy:
// - Keep only public entry points in the root package; extraction, type
//   hints, and assembly live in xmi/, typehint/, and assemble/.
// - Missing data never fails a run. Each fallback is recorded as an Issue.
// - Malformed XML and unwritable output are the only fatal errors.
//
// Typical usage:
//
//  res, paths, err := wmdrschema.ConvertFiles("wmdr.xmi", "wmdr.xsd", "out/FeatureCollection.schema.json", wmdrschema.DefaultOptions())
//
//  opts := wmdrschema.DefaultOptions()
//  opts.Mode = wmdrschema.ModeSplit
//  res, err := wmdrschema.ConvertBytes(model, hints, opts)
//  paths, err := res.Write("out/schema.json")
//
// The CLI lives under cmd/wmdrschema.
