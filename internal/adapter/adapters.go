package adapter

import (
	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/tool/directory"
	"github.com/Cyclone1070/toolshed/internal/tool/file"
	"github.com/Cyclone1070/toolshed/internal/tool/service/fs"
	"github.com/Cyclone1070/toolshed/internal/tool/service/workdir"
)

// DefaultTools wires the full catalog of six tools over the given filesystem
// service and working directory state. Every transport consumes the same set.
func DefaultTools(fileOps *fs.OSFileSystem, state *workdir.State) []dispatch.Tool {
	return []dispatch.Tool{
		NewCreateFile(file.NewCreateFileTool(fileOps, state)),
		NewEditFile(file.NewEditFileTool(fileOps, state)),
		NewDeleteFile(file.NewDeleteFileTool(fileOps, state)),
		NewReadFile(file.NewReadFileTool(fileOps, state)),
		NewListFiles(directory.NewListFilesTool(fileOps, state)),
		NewSetWorkingDirectory(directory.NewSetWorkingDirectoryTool(state)),
	}
}
