// Package dispatch routes named tool calls to file operations and normalizes
// their results into a uniform envelope. It is the single entry point
// consumed by the transports; how a failure is surfaced (textual "Error: "
// response vs HTTP status) is decided by each transport, not here.
package dispatch

import (
	"context"
	"fmt"
	"sort"

	"github.com/Cyclone1070/toolshed/internal/tool/errutil"
)

// Tool is one dispatchable operation.
type Tool interface {
	// Name returns the tool's catalog identifier.
	Name() string

	// Declaration returns the tool's schema for catalog publication.
	Declaration() Declaration

	// Execute decodes the argument bag, runs the operation and returns its
	// textual result. A missing required argument is an ordinary error on
	// the same channel as operation failures.
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// Dispatcher holds the fixed tool catalog.
type Dispatcher struct {
	registry map[string]Tool
}

// NewDispatcher creates a Dispatcher over the given tools.
func NewDispatcher(tools ...Tool) *Dispatcher {
	d := &Dispatcher{registry: make(map[string]Tool)}
	for _, t := range tools {
		d.Register(t)
	}
	return d
}

// Register adds a tool to the catalog, replacing any previous entry with the
// same name.
func (d *Dispatcher) Register(t Tool) {
	d.registry[t.Name()] = t
}

// Declarations returns the catalog sorted by tool name.
func (d *Dispatcher) Declarations() []Declaration {
	decls := make([]Declaration, 0, len(d.registry))
	for _, t := range d.registry {
		decls = append(decls, t.Declaration())
	}
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Name < decls[j].Name
	})
	return decls
}

// Dispatch validates the tool name, executes the matching tool and wraps its
// output in the result envelope. Every failure, from an unknown name to a
// filesystem error, comes back as a plain error for the transport to
// translate; nothing is retried or swallowed and no failure is fatal to the
// process.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Result, error) {
	t, ok := d.registry[req.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errutil.ErrUnknownTool, req.Name)
	}

	text, err := t.Execute(ctx, req.Args)
	if err != nil {
		return nil, err
	}

	return TextResult(text), nil
}

// ErrorText renders a dispatch failure the way the tool-call protocol reports
// it: a successful response whose text carries the message.
func ErrorText(err error) string {
	return "Error: " + err.Error()
}
