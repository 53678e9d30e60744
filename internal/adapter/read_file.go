package adapter

import (
	"context"

	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/tool/file"
	"github.com/google/jsonschema-go/jsonschema"
)

// ReadFile adapts ReadFileTool to the dispatch catalog.
type ReadFile struct {
	tool *file.ReadFileTool
}

// NewReadFile creates a new ReadFile adapter.
func NewReadFile(tool *file.ReadFileTool) *ReadFile {
	return &ReadFile{tool: tool}
}

// Name returns the tool name.
func (a *ReadFile) Name() string {
	return "read_file"
}

// Declaration returns the catalog entry.
func (a *ReadFile) Declaration() dispatch.Declaration {
	return dispatch.Declaration{
		Name:        a.Name(),
		Description: "Read the full text content of a file.",
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

// Execute runs the tool. The result text is the file content itself.
func (a *ReadFile) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req file.ReadFileRequest
	if err := decodeArgs(args, []string{"filepath"}, &req); err != nil {
		return "", err
	}

	resp, err := a.tool.Run(ctx, &req)
	if err != nil {
		return "", err
	}

	return resp.Content, nil
}
