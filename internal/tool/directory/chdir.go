package directory

import (
	"context"
)

// workdirSetter is the write side of the working directory state.
type workdirSetter interface {
	Set(dir string) (string, error)
}

// SetWorkingDirectoryTool relocates the sandbox root.
type SetWorkingDirectoryTool struct {
	workdir workdirSetter
}

// NewSetWorkingDirectoryTool creates a new SetWorkingDirectoryTool.
func NewSetWorkingDirectoryTool(workdir workdirSetter) *SetWorkingDirectoryTool {
	return &SetWorkingDirectoryTool{workdir: workdir}
}

// Run replaces the working directory. Unlike every other tool the argument is
// resolved against the process, not the current working directory, and no
// containment check applies: this operation is how the sandbox root itself
// moves. Validation of existence and directory-ness happens in the state cell.
func (t *SetWorkingDirectoryTool) Run(ctx context.Context, req *SetWorkingDirectoryRequest) (*SetWorkingDirectoryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	abs, err := t.workdir.Set(req.Path)
	if err != nil {
		return nil, err
	}

	return &SetWorkingDirectoryResponse{AbsolutePath: abs}, nil
}
