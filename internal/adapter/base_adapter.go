// Package adapter binds the file operation tools to the dispatch catalog.
// Each adapter owns one catalog entry: its name, its input schema and the
// decoding of the untyped argument bag into the tool's request type.
package adapter

import (
	"fmt"

	"github.com/Cyclone1070/toolshed/internal/tool/errutil"
	"github.com/mitchellh/mapstructure"
)

// decodeArgs checks required keys and decodes the argument bag into a typed
// request. Presence is checked on the raw bag so an absent "content" is
// distinguishable from an explicit empty string, which is a valid value.
func decodeArgs(args map[string]any, required []string, out any) error {
	for _, key := range required {
		if _, ok := args[key]; !ok {
			return fmt.Errorf("%w: %s", errutil.ErrMissingArgument, key)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to build argument decoder: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// display prefers the root-relative path for messages, falling back to the
// absolute one for the working directory itself.
func display(rel, abs string) string {
	if rel == "" {
		return abs
	}
	return rel
}
