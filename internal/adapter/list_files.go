package adapter

import (
	"context"
	"strings"

	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/tool/directory"
	"github.com/google/jsonschema-go/jsonschema"
)

// ListFiles adapts ListFilesTool to the dispatch catalog.
type ListFiles struct {
	tool *directory.ListFilesTool
}

// NewListFiles creates a new ListFiles adapter.
func NewListFiles(tool *directory.ListFilesTool) *ListFiles {
	return &ListFiles{tool: tool}
}

// Name returns the tool name.
func (a *ListFiles) Name() string {
	return "list_files"
}

// Declaration returns the catalog entry.
func (a *ListFiles) Declaration() dispatch.Declaration {
	return dispatch.Declaration{
		Name:        a.Name(),
		Description: "List the entries of a directory, one [DIR] or [FILE] tagged line per child. Defaults to the working directory.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"directory": {
					Type:        "string",
					Description: "Directory to list, relative to the working directory. Optional.",
				},
			},
		},
	}
}

// Execute runs the tool. Entries are rendered one per line in the order the
// listing produced them.
func (a *ListFiles) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req directory.ListFilesRequest
	if err := decodeArgs(args, nil, &req); err != nil {
		return "", err
	}

	resp, err := a.tool.Run(ctx, &req)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		tag := "[FILE]"
		if e.IsDirectory {
			tag = "[DIR]"
		}
		lines = append(lines, tag+" "+e.Name)
	}

	return strings.Join(lines, "\n"), nil
}
