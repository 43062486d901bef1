package wmdrschema

import (
	"errors"

	"github.com/reoring/wmdrschema/diag"
)

// ErrEmptyOutputPath is returned when no output path is given.
var ErrEmptyOutputPath = errors.New("wmdrschema: empty output path")

// Issue and Issues re-export the diagnostic types recorded in Result.Issues.
type (
	Issue  = diag.Issue
	Issues = diag.Issues
)

// Strict returns r.Issues as an error when any were recorded, for callers
// that treat fallbacks as failures.
func (r *Result) Strict() error {
	if len(r.Issues) == 0 {
		return nil
	}
	return r.Issues
}
