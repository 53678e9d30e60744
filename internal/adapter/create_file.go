package adapter

import (
	"context"
	"fmt"

	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/tool/file"
	"github.com/google/jsonschema-go/jsonschema"
)

// CreateFile adapts CreateFileTool to the dispatch catalog.
type CreateFile struct {
	tool *file.CreateFileTool
}

// NewCreateFile creates a new CreateFile adapter.
func NewCreateFile(tool *file.CreateFileTool) *CreateFile {
	return &CreateFile{tool: tool}
}

// Name returns the tool name.
func (a *CreateFile) Name() string {
	return "create_file"
}

// Declaration returns the catalog entry.
func (a *CreateFile) Declaration() dispatch.Declaration {
	return dispatch.Declaration{
		Name:        a.Name(),
		Description: "Create a file with the given content, creating parent directories as needed. Overwrites the file if it already exists.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"filepath": {
					Type:        "string",
					Description: "Path to the file, relative to the working directory",
				},
				"content": {
					Type:        "string",
					Description: "Full content to write",
				},
			},
			Required: []string{"filepath", "content"},
		},
	}
}

// Execute runs the tool.
func (a *CreateFile) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req file.CreateFileRequest
	if err := decodeArgs(args, []string{"filepath", "content"}, &req); err != nil {
		return "", err
	}

	resp, err := a.tool.Run(ctx, &req)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Created file: %s", display(resp.RelativePath, resp.AbsolutePath)), nil
}
