// Package mcpserver exposes the tool catalog over the Model Context Protocol.
// It is a thin adapter: every registered MCP tool forwards to the dispatcher,
// and every dispatch failure becomes a successful tool result whose text
// starts with "Error: " - the stdio protocol never reports tool failures as
// protocol errors.
package mcpserver

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/logging"
	"go.uber.org/zap"
)

const serverName = "toolshed"

// New builds an MCP server over the dispatcher's catalog.
func New(dispatcher *dispatch.Dispatcher, version string, logger *logging.Logger) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: serverName, Version: version},
		nil,
	)

	for _, decl := range dispatcher.Declarations() {
		registerTool(server, dispatcher, decl, logger)
	}

	return server
}

// Run serves the given server over stdio until the client disconnects or the
// context is cancelled.
func Run(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerTool(server *mcp.Server, dispatcher *dispatch.Dispatcher, decl dispatch.Declaration, logger *logging.Logger) {
	name := decl.Name

	mcp.AddTool(server, &mcp.Tool{
		Name:        decl.Name,
		Description: decl.Description,
		InputSchema: registrationSchema(decl),
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, struct{}, error) {
		res, err := dispatcher.Dispatch(ctx, dispatch.Request{Name: name, Args: args})
		if err != nil {
			logger.Warn("tool call failed", zap.String("tool", name), zap.Error(err))
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: dispatch.ErrorText(err)}},
				IsError: true,
			}, struct{}{}, nil
		}

		logger.Debug("tool call succeeded", zap.String("tool", name))
		return toCallToolResult(res), struct{}{}, nil
	})
}

// registrationSchema copies the declaration schema without its Required
// constraint. The SDK validates call arguments against the registered schema
// before the handler runs; a missing argument must instead reach the
// dispatcher and come back as an IsError tool result, so the presence check
// stays on the dispatch side.
func registrationSchema(decl dispatch.Declaration) *jsonschema.Schema {
	if decl.InputSchema == nil {
		return nil
	}
	schema := *decl.InputSchema
	schema.Required = nil
	return &schema
}

// toCallToolResult maps the dispatch envelope onto the MCP result shape.
func toCallToolResult(res *dispatch.Result) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(res.Content))
	for _, block := range res.Content {
		content = append(content, &mcp.TextContent{Text: block.Text})
	}
	return &mcp.CallToolResult{Content: content}
}
