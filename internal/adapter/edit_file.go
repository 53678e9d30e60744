package adapter

import (
	"context"
	"fmt"

	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/tool/file"
	"github.com/google/jsonschema-go/jsonschema"
)

// EditFile adapts EditFileTool to the dispatch catalog.
type EditFile struct {
	tool *file.EditFileTool
}

// NewEditFile creates a new EditFile adapter.
func NewEditFile(tool *file.EditFileTool) *EditFile {
	return &EditFile{tool: tool}
}

// Name returns the tool name.
func (a *EditFile) Name() string {
	return "edit_file"
}

// Declaration returns the catalog entry.
func (a *EditFile) Declaration() dispatch.Declaration {
	return dispatch.Declaration{
		Name:        a.Name(),
		Description: "Replace the content of an existing file. Fails if the file does not exist.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"filepath": {
					Type:        "string",
					Description: "Path to the file, relative to the working directory",
				},
				"content": {
					Type:        "string",
					Description: "Full replacement content",
				},
			},
			Required: []string{"filepath", "content"},
		},
	}
}

// Execute runs the tool.
func (a *EditFile) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req file.EditFileRequest
	if err := decodeArgs(args, []string{"filepath", "content"}, &req); err != nil {
		return "", err
	}

	resp, err := a.tool.Run(ctx, &req)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Edited file: %s", display(resp.RelativePath, resp.AbsolutePath)), nil
}
