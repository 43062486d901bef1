package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes for conditions that fall back silently instead of failing a run.
const (
	CodeUnnamedClass             = "unnamed_class"
	CodeUnnamedAttribute         = "unnamed_attribute"
	CodeUnresolvedGeneralization = "unresolved_generalization"
	CodeInheritanceCycle         = "inheritance_cycle"
	CodeMissingClass             = "missing_class"
	CodeMissingTypeHint          = "missing_type_hint"
	CodeUnknownPrimitive         = "unknown_primitive"
	CodeDanglingRef              = "dangling_ref"
)

// Issue represents a single non-fatal finding.
type Issue struct {
	Code    string // One of the codes listed above.
	Path    string // Where it happened, e.g. ObservingFacility/elevation or a JSON Pointer.
	Message string
}

func (it Issue) String() string {
	if it.Path == "" {
		return fmt.Sprintf("%s: %s", it.Code, it.Message)
	}
	return fmt.Sprintf("%s at %s: %s", it.Code, it.Path, it.Message)
}

// Issues is a collection of findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// WithCode returns the subset of issues carrying code.
func (iss Issues) WithCode(code string) Issues {
	var out Issues
	for _, it := range iss {
		if it.Code == code {
			out = append(out, it)
		}
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Collector accumulates issues during one conversion run. A nil *Collector
// discards everything, so callers that do not care can pass nil.
type Collector struct{ issues Issues }

func (c *Collector) Warnf(code, path, format string, a ...any) {
	if c == nil {
		return
	}
	c.issues = append(c.issues, Issue{Code: code, Path: path, Message: fmt.Sprintf(format, a...)})
}

// Issues returns a copy of the collected issues in the order they were recorded.
func (c *Collector) Issues() Issues {
	if c == nil {
		return nil
	}
	return append(Issues(nil), c.issues...)
}
