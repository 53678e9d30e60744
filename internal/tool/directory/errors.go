package directory

import (
	"fmt"

	"github.com/Cyclone1070/toolshed/internal/tool/errutil"
)

var (
	ErrPathRequired     = errutil.ErrPathRequired
	ErrDirectoryMissing = errutil.ErrNotFound
	ErrNotADirectory    = errutil.ErrNotADirectory
)

type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }

type ReadDirError struct {
	Path  string
	Cause error
}

func (e *ReadDirError) Error() string {
	return fmt.Sprintf("failed to list %s: %v", e.Path, e.Cause)
}
func (e *ReadDirError) Unwrap() error { return e.Cause }
