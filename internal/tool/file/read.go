package file

import (
	"context"
	"fmt"
	"os"

	"github.com/Cyclone1070/toolshed/internal/tool/service/path"
)

// fileReader defines the minimal filesystem operations needed for reading files.
type fileReader interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// ReadFileTool handles file reading.
type ReadFileTool struct {
	fileOps fileReader
	workdir workdirState
}

// NewReadFileTool creates a new ReadFileTool with injected dependencies.
func NewReadFileTool(fileOps fileReader, workdir workdirState) *ReadFileTool {
	return &ReadFileTool{
		fileOps: fileOps,
		workdir: workdir,
	}
}

// Run returns the full text content of a file inside the working directory.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *ReadFileTool) Run(ctx context.Context, req *ReadFileRequest) (*ReadFileResponse, error) {
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

	contentBytes, err := t.fileOps.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, req.Path)
		}
		return nil, &ReadError{Path: abs, Cause: err}
	}

	return &ReadFileResponse{
		Content:      string(contentBytes),
		AbsolutePath: abs,
		RelativePath: path.Rel(root, abs),
		Size:         info.Size(),
	}, nil
}
