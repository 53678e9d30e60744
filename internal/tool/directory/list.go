package directory

import (
	"context"
	"fmt"
	"os"

	"github.com/Cyclone1070/toolshed/internal/tool/service/path"
)

// dirLister defines the minimal filesystem operations needed for listing.
type dirLister interface {
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
}

// workdirState provides the working directory snapshot tools resolve against.
type workdirState interface {
	Get() string
}

// ListFilesTool handles directory listing.
type ListFilesTool struct {
	fileOps dirLister
	workdir workdirState
}

// NewListFilesTool creates a new ListFilesTool with injected dependencies.
func NewListFilesTool(fileOps dirLister, workdir workdirState) *ListFilesTool {
	return &ListFilesTool{
		fileOps: fileOps,
		workdir: workdir,
	}
}

// Run lists the immediate children of a directory inside the working
// directory, defaulting to the working directory itself. Entries keep the
// order the underlying readdir produced; no sorting is applied on top.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *ListFilesTool) Run(ctx context.Context, req *ListFilesRequest) (*ListFilesResponse, error) {
	target := req.Path
	if target == "" {
		target = "."
	}

	root := t.workdir.Get()
	abs, err := path.Resolve(root, target)
	if err != nil {
		return nil, err
	}

	info, err := t.fileOps.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryMissing, target)
		}
		return nil, &StatError{Path: abs, Cause: err}
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, target)
	}

	dirEntries, err := t.fileOps.ReadDir(abs)
	if err != nil {
		return nil, &ReadDirError{Path: abs, Cause: err}
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, Entry{
			Name:        e.Name(),
			IsDirectory: e.IsDir(),
		})
	}

	return &ListFilesResponse{
		AbsolutePath: abs,
		RelativePath: path.Rel(root, abs),
		Entries:      entries,
	}, nil
}
