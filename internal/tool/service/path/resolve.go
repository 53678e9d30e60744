package path

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/toolshed/internal/tool/errutil"
)

// CanonicaliseRoot canonicalises a candidate working directory by making it
// absolute and resolving symlinks. Returns an error if the path doesn't exist
// or isn't a directory.
func CanonicaliseRoot(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &RootError{Root: root, Cause: err}
	}

	// Resolve symlinks so the containment prefix check below compares
	// canonical paths
	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", errutil.ErrNotFound, absRoot)
		}
		return "", &RootError{Root: absRoot, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", errutil.ErrNotFound, resolved)
		}
		return "", &RootError{Root: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", errutil.ErrNotADirectory, resolved)
	}
	return resolved, nil
}

// Resolve validates a caller-supplied path against the given working directory
// root and returns its absolute form. Relative paths are joined to the root;
// absolute paths are accepted as-is. The cleaned result must be the root
// itself or a strict descendant of it, otherwise ErrOutsideWorkspace.
//
// Resolve is a pure string computation: it makes no filesystem calls, so the
// containment decision is taken before any I/O happens.
func Resolve(root, input string) (string, error) {
	if root == "" {
		return "", ErrRootNotSet
	}

	var abs string
	if filepath.IsAbs(input) {
		abs = filepath.Clean(input)
	} else {
		abs = filepath.Clean(filepath.Join(root, input))
	}

	// Boundary check: the separator suffix stops /work from matching /workspace
	if abs != root && !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", errutil.ErrOutsideWorkspace, input)
	}

	return abs, nil
}

// Rel converts an already-resolved absolute path back to a root-relative form
// for messaging. Returns "" for the root itself.
func Rel(root, abs string) string {
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}
