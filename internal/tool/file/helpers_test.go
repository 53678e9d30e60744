package file

import (
	"testing"

	"github.com/Cyclone1070/toolshed/internal/tool/service/fs"
	"github.com/Cyclone1070/toolshed/internal/tool/service/workdir"
)

// newTestWorkdir returns a workdir state rooted at a fresh temp directory.
func newTestWorkdir(t *testing.T) *workdir.State {
	t.Helper()
	state, err := workdir.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create workdir: %v", err)
	}
	return state
}

func newTestFS() *fs.OSFileSystem {
	return fs.NewOSFileSystem()
}
