package path

import (
	"errors"
	"fmt"
)

// RootError is returned when a candidate working directory cannot be
// canonicalised for reasons other than the sentinel precondition failures.
type RootError struct {
	Root  string
	Cause error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("invalid working directory %s: %v", e.Root, e.Cause)
}
func (e *RootError) Unwrap() error { return e.Cause }

// ErrRootNotSet indicates Resolve was called before a working directory was
// established.
var ErrRootNotSet = errors.New("working directory not set")
