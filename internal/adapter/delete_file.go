package adapter

import (
	"context"
	"fmt"

	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/tool/file"
	"github.com/google/jsonschema-go/jsonschema"
)

// DeleteFile adapts DeleteFileTool to the dispatch catalog.
type DeleteFile struct {
	tool *file.DeleteFileTool
}

// NewDeleteFile creates a new DeleteFile adapter.
func NewDeleteFile(tool *file.DeleteFileTool) *DeleteFile {
	return &DeleteFile{tool: tool}
}

// Name returns the tool name.
func (a *DeleteFile) Name() string {
	return "delete_file"
}

// Declaration returns the catalog entry.
func (a *DeleteFile) Declaration() dispatch.Declaration {
	return dispatch.Declaration{
		Name:        a.Name(),
		Description: "Delete a file. Fails if the file does not exist.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"filepath": {
					Type:        "string",
					Description: "Path to the file, relative to the working directory",
				},
			},
			Required: []string{"filepath"},
		},
	}
}

// Execute runs the tool.
func (a *DeleteFile) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req file.DeleteFileRequest
	if err := decodeArgs(args, []string{"filepath"}, &req); err != nil {
		return "", err
	}

	resp, err := a.tool.Run(ctx, &req)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Deleted file: %s", display(resp.RelativePath, resp.AbsolutePath)), nil
}
