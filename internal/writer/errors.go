package writer

import "errors"

// Boundary failure kinds. The core segmentation never fails; these cover the
// filesystem edge around it. All are fatal to the run — files already written
// stay in place, there is no rollback.
var (
	// ErrOutputExists reports a pre-existing non-empty output location
	// without an overwrite directive.
	ErrOutputExists = errors.New("output location already exists")

	// ErrIO marks a filesystem failure during directory or file creation.
	ErrIO = errors.New("filesystem failure")
)
