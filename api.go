package wmdrschema

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/reoring/wmdrschema/assemble"
	"github.com/reoring/wmdrschema/diag"
	"github.com/reoring/wmdrschema/emit"
	"github.com/reoring/wmdrschema/typehint"
	"github.com/reoring/wmdrschema/xmi"
	"github.com/reoring/wmdrschema/xmlnode"
)

// Mode selects unified or split output.
type Mode = assemble.Mode

const (
	ModeUnified = assemble.Unified
	ModeSplit   = assemble.Split
)

// Document is one produced schema document.
type Document = assemble.Document

// Options configures a conversion run.
type Options struct {
	Mode   Mode
	IDBase string // prefix of every $id; defaults to assemble.DefaultIDBase
	Format emit.Format
	Indent int // spaces per level; 0 means emit.DefaultIndent
}

// DefaultOptions returns unified JSON output under the WMDR id base.
func DefaultOptions() Options {
	return Options{
		Mode:   ModeUnified,
		IDBase: assemble.DefaultIDBase,
		Format: emit.JSON,
		Indent: emit.DefaultIndent,
	}
}

func (o Options) assembleOptions() assemble.Options {
	format := o.Format
	if format == "" {
		format = emit.JSON
	}
	return assemble.Options{Mode: o.Mode, IDBase: o.IDBase, Suffix: format.Suffix()}
}

// Result holds the documents of one run and the non-fatal issues recorded
// while producing them.
type Result struct {
	Documents []Document
	Issues    diag.Issues

	opts Options
}

// Convert runs the transformation over already-parsed model and type-hint
// trees. It never fails: missing data falls back and shows up in
// Result.Issues.
func Convert(model, hints *xmlnode.Node, opts Options) *Result {
	d := &diag.Collector{}
	m := xmi.Extract(model, d)
	h := typehint.Build(hints)
	a := assemble.New(m, h, d, opts.assembleOptions())
	docs := a.Build()
	assemble.CheckRefs(docs, a.Options(), d)
	return &Result{Documents: docs, Issues: d.Issues(), opts: opts}
}

// ConvertBytes parses the XMI model and XSD hint documents and converts them.
func ConvertBytes(model, hints []byte, opts Options) (*Result, error) {
	mroot, err := xmlnode.Parse(model)
	if err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	hroot, err := xmlnode.Parse(hints)
	if err != nil {
		return nil, fmt.Errorf("parse type hints: %w", err)
	}
	return Convert(mroot, hroot, opts), nil
}

// ConvertFiles reads the model and hint files, converts them, and writes the
// documents relative to outPath (see Result.Write).
func ConvertFiles(modelPath, hintsPath, outPath string, opts Options) (*Result, []string, error) {
	if outPath == "" {
		return nil, nil, ErrEmptyOutputPath
	}
	model, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read model: %w", err)
	}
	hints, err := os.ReadFile(hintsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read type hints: %w", err)
	}
	res, err := ConvertBytes(model, hints, opts)
	if err != nil {
		return nil, nil, err
	}
	paths, err := res.Write(outPath)
	if err != nil {
		return res, nil, err
	}
	return res, paths, nil
}

// Paths returns where each document goes for outPath: the unified document
// is written to outPath itself, split documents go next to it under their
// own file names.
func (r *Result) Paths(outPath string) []string {
	suffix := r.opts.assembleOptions().Suffix
	paths := make([]string, 0, len(r.Documents))
	if r.opts.Mode != ModeSplit {
		for range r.Documents {
			paths = append(paths, outPath)
		}
		return paths
	}
	dir := filepath.Dir(outPath)
	for _, doc := range r.Documents {
		paths = append(paths, filepath.Join(dir, doc.FileName(suffix)))
	}
	return paths
}

// Write encodes every document before writing any of them, then writes them
// all. It returns the written paths.
func (r *Result) Write(outPath string) ([]string, error) {
	if outPath == "" {
		return nil, ErrEmptyOutputPath
	}
	paths := r.Paths(outPath)
	files := make([]emit.File, 0, len(r.Documents))
	for i, doc := range r.Documents {
		data, err := emit.Encode(doc.Schema, r.format(), r.opts.Indent)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", doc.Name, err)
		}
		files = append(files, emit.File{Path: paths[i], Data: data})
	}
	if err := emit.WriteAll(files); err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *Result) format() emit.Format {
	if r.opts.Format == "" {
		return emit.JSON
	}
	return r.opts.Format
}
