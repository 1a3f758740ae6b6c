package fieldpath

import (
	"errors"
	"fmt"
)

// ErrPathNotResolved indicates a path segment could not be looked up on the
// current traversal value. Check with errors.Is; the concrete error is a
// *ResolutionError carrying diagnostics.
var ErrPathNotResolved = errors.New("field path not resolved")

// ResolutionError reports a failed path resolution. It carries the full
// original path and the root object's type name for diagnostics.
type ResolutionError struct {
	// Path is the original, unsplit attribute path.
	Path string
	// RootType is the type name of the object the resolution started from.
	RootType string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("attribute path %q could not be resolved on instance of %s", e.Path, e.RootType)
}

func (e *ResolutionError) Unwrap() error {
	return ErrPathNotResolved
}
