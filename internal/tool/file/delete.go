package file

import (
	"context"
	"fmt"
	"os"

	"github.com/Cyclone1070/toolshed/internal/tool/service/path"
)

// fileRemover defines the minimal filesystem operations needed for deleting files.
type fileRemover interface {
	Stat(path string) (os.FileInfo, error)
	Remove(path string) error
}

// DeleteFileTool handles file deletion.
type DeleteFileTool struct {
	fileOps fileRemover
	workdir workdirState
}

// NewDeleteFileTool creates a new DeleteFileTool with injected dependencies.
func NewDeleteFileTool(fileOps fileRemover, workdir workdirState) *DeleteFileTool {
	return &DeleteFileTool{
		fileOps: fileOps,
		workdir: workdir,
	}
}

// Run removes a file inside the working directory. The target must exist and
// be a regular file; deleting again after success fails with ErrFileMissing.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *DeleteFileTool) Run(ctx context.Context, req *DeleteFileRequest) (*DeleteFileResponse, error) {
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

	if err := t.fileOps.Remove(abs); err != nil {
		return nil, &RemoveError{Path: abs, Cause: err}
	}

	return &DeleteFileResponse{
		AbsolutePath: abs,
		RelativePath: path.Rel(root, abs),
	}, nil
}
