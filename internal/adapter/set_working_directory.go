package adapter

import (
	"context"
	"fmt"

	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/tool/directory"
	"github.com/google/jsonschema-go/jsonschema"
)

// SetWorkingDirectory adapts SetWorkingDirectoryTool to the dispatch catalog.
type SetWorkingDirectory struct {
	tool *directory.SetWorkingDirectoryTool
}

// NewSetWorkingDirectory creates a new SetWorkingDirectory adapter.
func NewSetWorkingDirectory(tool *directory.SetWorkingDirectoryTool) *SetWorkingDirectory {
	return &SetWorkingDirectory{tool: tool}
}

// Name returns the tool name.
func (a *SetWorkingDirectory) Name() string {
	return "set_working_directory"
}

// Declaration returns the catalog entry.
func (a *SetWorkingDirectory) Declaration() dispatch.Declaration {
	return dispatch.Declaration{
		Name:        a.Name(),
		Description: "Move the working directory all other operations are confined to. The path is resolved against the process, not the current working directory.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"directory": {
					Type:        "string",
					Description: "Path of the new working directory",
				},
			},
			Required: []string{"directory"},
		},
	}
}

// Execute runs the tool.
func (a *SetWorkingDirectory) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req directory.SetWorkingDirectoryRequest
	if err := decodeArgs(args, []string{"directory"}, &req); err != nil {
		return "", err
	}

	resp, err := a.tool.Run(ctx, &req)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Working directory set to: %s", resp.AbsolutePath), nil
}
