package file

import (
	"fmt"

	"github.com/Cyclone1070/toolshed/internal/tool/errutil"
)

// Sentinels shared with the dispatch layer live in errutil; aliases here keep
// call sites in this package short.
var (
	ErrPathRequired = errutil.ErrPathRequired
	ErrFileMissing  = errutil.ErrNotFound
	ErrIsDirectory  = errutil.ErrIsDirectory
)

// -- Typed wrappers for I/O causes --

type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }

type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }

type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}
func (e *WriteError) Unwrap() error { return e.Cause }

type RemoveError struct {
	Path  string
	Cause error
}

func (e *RemoveError) Error() string {
	return fmt.Sprintf("failed to delete %s: %v", e.Path, e.Cause)
}
func (e *RemoveError) Unwrap() error { return e.Cause }

type EnsureDirsError struct {
	Path  string
	Cause error
}

func (e *EnsureDirsError) Error() string {
	return fmt.Sprintf("failed to create parent directories for %s: %v", e.Path, e.Cause)
}
func (e *EnsureDirsError) Unwrap() error { return e.Cause }
