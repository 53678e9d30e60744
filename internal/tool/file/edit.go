package file

import (
	"context"
	"fmt"
	"os"

	"github.com/Cyclone1070/toolshed/internal/tool/service/path"
)

// fileEditor defines the minimal filesystem operations needed for editing files.
type fileEditor interface {
	Stat(path string) (os.FileInfo, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
}

// EditFileTool handles overwriting existing files.
type EditFileTool struct {
	fileOps fileEditor
	workdir workdirState
}

// NewEditFileTool creates a new EditFileTool with injected dependencies.
func NewEditFileTool(fileOps fileEditor, workdir workdirState) *EditFileTool {
	return &EditFileTool{
		fileOps: fileOps,
		workdir: workdir,
	}
}

// Run replaces the content of an existing file. The existence pre-check is
// the whole contract: the write itself is identical to create, but edit must
// never silently bring a file into being.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *EditFileTool) Run(ctx context.Context, req *EditFileRequest) (*EditFileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	root := t.workdir.Get()
	abs, err := path.Resolve(root, req.Path)
	if err != nil {
		return nil, err
	}

	info, err := t.fileOps.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, req.Path)
		}
		return nil, &StatError{Path: abs, Cause: err}
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, req.Path)
	}

	contentBytes := []byte(req.Content)
	if err := t.fileOps.WriteFileAtomic(abs, contentBytes, info.Mode().Perm()); err != nil {
		return nil, &WriteError{Path: abs, Cause: err}
	}

	return &EditFileResponse{
		AbsolutePath: abs,
		RelativePath: path.Rel(root, abs),
		BytesWritten: len(contentBytes),
	}, nil
}
