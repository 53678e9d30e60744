package dispatch

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// Request is the transport-agnostic tool call envelope: a tool name plus an
// untyped argument bag. One Request is consumed per call.
type Request struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// ContentBlock is a unit of textual result inside a tool response.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the success envelope shared by every transport. Immutable once
// returned.
type Result struct {
	Content []ContentBlock `json:"content"`
}

// TextResult wraps a tool's textual output as a single-element content
// sequence.
func TextResult(text string) *Result {
	return &Result{Content: []ContentBlock{{Type: "text", Text: text}}}
}

// Declaration describes one catalog entry: the tool's name and its input
// schema, published over HTTP and registered with the MCP server.
type Declaration struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"input_schema"`
}
