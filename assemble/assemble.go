// Package assemble turns the extracted UML model and XSD type hints into the
// JSON Schema documents for an ObservingFacility GeoJSON FeatureCollection.
//
// Two layouts are supported. Unified produces one document that carries the
// class schemas under $defs. Split produces one document per class plus the
// FeatureCollection wrapper and the geometry schema, cross-referenced by
// relative file name.
package assemble

import (
	"github.com/reoring/wmdrschema/diag"
	js "github.com/reoring/wmdrschema/jsonschema"
	"github.com/reoring/wmdrschema/typehint"
	"github.com/reoring/wmdrschema/xmi"
)

// Target class names.
const (
	ObservingFacility = "ObservingFacility"
	Equipment         = "Equipment"
	Observation       = "Observation"
)

const (
	// GeospatialLocation is carried by the feature geometry, never by the
	// ObservingFacility properties.
	GeospatialLocation = "geospatialLocation"

	FeatureCollection = "FeatureCollection"
	Geometry          = "geometry"

	DefaultIDBase = "https://schemas.wmo.int/wmdr/json-schema/"
	DefaultSuffix = ".schema.json"
)

// Mode selects the output layout.
type Mode int

const (
	Unified Mode = iota
	Split
)

func (m Mode) String() string {
	if m == Split {
		return "split"
	}
	return "unified"
}

// Options controls document identity and layout.
type Options struct {
	Mode   Mode
	IDBase string // prefix of every $id
	Suffix string // file name suffix used in $id and cross-file $ref
}

func (o Options) withDefaults() Options {
	if o.IDBase == "" {
		o.IDBase = DefaultIDBase
	}
	if o.Suffix == "" {
		o.Suffix = DefaultSuffix
	}
	return o
}

// Document is one produced schema. Name is the file stem, for example
// "Equipment" for Equipment.schema.json.
type Document struct {
	Name   string
	Schema *js.Schema
}

// FileName returns Name with the configured suffix.
func (d Document) FileName(suffix string) string { return d.Name + suffix }

// Assembler builds schema documents for one conversion run.
type Assembler struct {
	model *xmi.Model
	hints typehint.Hints
	diag  *diag.Collector
	opts  Options
}

// New returns an Assembler over the given model and hints. d may be nil.
func New(model *xmi.Model, hints typehint.Hints, d *diag.Collector, opts Options) *Assembler {
	return &Assembler{model: model, hints: hints, diag: d, opts: opts.withDefaults()}
}

// Options returns the effective options.
func (a *Assembler) Options() Options { return a.opts }

// refTo returns the $ref target for a named definition in the current mode.
func (a *Assembler) refTo(name string) string {
	if a.opts.Mode == Split {
		return name + a.opts.Suffix
	}
	return "#/$defs/" + name
}

func (a *Assembler) id(name string) string { return a.opts.IDBase + name + a.opts.Suffix }

// Build produces the documents for the configured mode.
func (a *Assembler) Build() []Document {
	if a.opts.Mode == Split {
		return a.Split()
	}
	return []Document{a.Unified()}
}

// Unified builds the single self-contained FeatureCollection document.
func (a *Assembler) Unified() Document {
	facility := a.classSchema(ObservingFacility, true, GeospatialLocation)
	applyCollectionFixups(facility.Properties, a.refTo)
	equipment := a.classSchema(Equipment, false)
	observation := a.classSchema(Observation, false)

	root := featureCollection(a.refTo(Geometry), a.refTo(ObservingFacility))
	root.Schema = js.Draft202012
	root.ID = a.id(FeatureCollection)
	root.Title = ObservingFacility + " " + FeatureCollection
	root.Defs = js.NewMap()
	root.Defs.Set(Geometry, pointGeometry())
	root.Defs.Set(Equipment, equipment)
	root.Defs.Set(Observation, observation)
	root.Defs.Set(ObservingFacility, facility)
	return Document{Name: FeatureCollection, Schema: root}
}

// Split builds the per-class documents, the wrapper, and the geometry
// document, in that order.
func (a *Assembler) Split() []Document {
	docs := make([]Document, 0, 5)
	for _, name := range []string{ObservingFacility, Equipment, Observation} {
		var s *js.Schema
		if name == ObservingFacility {
			s = a.classSchema(name, true, GeospatialLocation)
		} else {
			s = a.classSchema(name, true)
		}
		docs = append(docs, Document{Name: name, Schema: a.standalone(name, name, s)})
	}
	wrapper := featureCollection(a.refTo(Geometry), a.refTo(ObservingFacility))
	docs = append(docs, Document{
		Name:   FeatureCollection,
		Schema: a.standalone(FeatureCollection, ObservingFacility+" "+FeatureCollection, wrapper),
	})
	docs = append(docs, Document{Name: Geometry, Schema: a.standalone(Geometry, "Geometry", pointGeometry())})
	return docs
}

func (a *Assembler) standalone(name, title string, s *js.Schema) *js.Schema {
	s.Schema = js.Draft202012
	s.ID = a.id(name)
	s.Title = title
	return s
}
