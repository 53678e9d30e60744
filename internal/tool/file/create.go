package file

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/toolshed/internal/tool/service/path"
)

// fileCreator defines the minimal filesystem operations needed for creating files.
type fileCreator interface {
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
	EnsureDirs(path string) error
}

// CreateFileTool handles file creation.
type CreateFileTool struct {
	fileOps fileCreator
	workdir workdirState
}

// NewCreateFileTool creates a new CreateFileTool with injected dependencies.
func NewCreateFileTool(fileOps fileCreator, workdir workdirState) *CreateFileTool {
	return &CreateFileTool{
		fileOps: fileOps,
		workdir: workdir,
	}
}

// Run writes content to a file inside the working directory, creating parent
// directories as needed. An existing file is overwritten: create places no
// precondition on existence, which is what distinguishes it from edit.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *CreateFileTool) Run(ctx context.Context, req *CreateFileRequest) (*CreateFileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	root := t.workdir.Get()
	abs, err := path.Resolve(root, req.Path)
	if err != nil {
		return nil, err
	}

	if err := t.fileOps.EnsureDirs(filepath.Dir(abs)); err != nil {
		return nil, &EnsureDirsError{Path: abs, Cause: err}
	}

	contentBytes := []byte(req.Content)
	if err := t.fileOps.WriteFileAtomic(abs, contentBytes, 0o644); err != nil {
		return nil, &WriteError{Path: abs, Cause: err}
	}

	return &CreateFileResponse{
		AbsolutePath: abs,
		RelativePath: path.Rel(root, abs),
		BytesWritten: len(contentBytes),
	}, nil
}
