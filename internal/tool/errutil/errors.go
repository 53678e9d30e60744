package errutil

import "errors"

// Sentinel errors for consistent error handling across tools.
// Every failure raised by the tool layer wraps one of these; transports
// match with errors.Is and decide how to surface it.
var (
	// Path confinement
	ErrOutsideWorkspace = errors.New("path is outside the working directory")

	// Filesystem preconditions
	ErrNotFound      = errors.New("file or directory does not exist")
	ErrNotADirectory = errors.New("not a directory")
	ErrIsDirectory   = errors.New("path is a directory")

	// Dispatch
	ErrUnknownTool     = errors.New("unknown tool")
	ErrMissingArgument = errors.New("missing required argument")
	ErrPathRequired    = errors.New("path is required")
)
