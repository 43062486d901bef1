package assemble

import (
	"strings"

	"github.com/reoring/wmdrschema/diag"
	js "github.com/reoring/wmdrschema/jsonschema"
)

// CheckRefs reports every $ref in docs that does not resolve within the
// document set: local "#/$defs/<Name>" pointers against the document's own
// $defs, and file references against the documents' file names. References
// under idBase are treated as file references. Findings are warnings only.
func CheckRefs(docs []Document, opts Options, d *diag.Collector) {
	opts = opts.withDefaults()
	files := make(map[string]bool, len(docs))
	for _, doc := range docs {
		files[doc.FileName(opts.Suffix)] = true
	}
	for _, doc := range docs {
		file := doc.FileName(opts.Suffix)
		js.Walk(doc.Schema, func(ptr string, s *js.Schema) {
			if s.Ref == "" {
				return
			}
			if msg := resolveRef(s.Ref, doc.Schema, files, opts.IDBase); msg != "" {
				d.Warnf(diag.CodeDanglingRef, file+"#"+ptr, "$ref %q: %s", s.Ref, msg)
			}
		})
	}
}

// resolveRef returns an empty string when ref resolves, or the reason it
// does not.
func resolveRef(ref string, root *js.Schema, files map[string]bool, idBase string) string {
	ref = strings.TrimPrefix(ref, idBase)
	file, frag, _ := strings.Cut(ref, "#")
	if file != "" && !files[file] {
		return "no document named " + file
	}
	if file != "" || frag == "" {
		return ""
	}
	if !strings.HasPrefix(frag, "/$defs/") {
		return "only $defs pointers are checked"
	}
	key, _, _ := strings.Cut(strings.TrimPrefix(frag, "/$defs/"), "/")
	if !root.Defs.Has(key) {
		return "no $defs entry " + key
	}
	return ""
}
