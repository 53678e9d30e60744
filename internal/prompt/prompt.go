// Package prompt translates natural-language phrases into tool calls. It is a
// best-effort regex matcher with no invariants of its own: anything it cannot
// recognize is rejected with a hint, and everything it produces still goes
// through the dispatcher's validation like any other request.
package prompt

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Cyclone1070/toolshed/internal/dispatch"
)

// ErrNoMatch is returned for input no pattern recognizes.
var ErrNoMatch = errors.New("could not understand the request")

type pattern struct {
	re    *regexp.Regexp
	build func(groups []string) dispatch.Request
}

// Order matters: more specific phrasings first so "create file x with
// content y" is not swallowed by a shorter pattern.
var patterns = []pattern{
	{
		re: regexp.MustCompile(`(?i)^create (?:a )?(?:new )?file (?:called |named )?(\S+) with (?:the )?contents? (.+)$`),
		build: func(g []string) dispatch.Request {
			return dispatch.Request{Name: "create_file", Args: map[string]any{
				"filepath": unquote(g[1]),
				"content":  unquote(g[2]),
			}}
		},
	},
	{
		re: regexp.MustCompile(`(?i)^(?:edit|update|overwrite) (?:the )?file (\S+) with (?:the )?(?:new )?contents? (.+)$`),
		build: func(g []string) dispatch.Request {
			return dispatch.Request{Name: "edit_file", Args: map[string]any{
				"filepath": unquote(g[1]),
				"content":  unquote(g[2]),
			}}
		},
	},
	{
		re: regexp.MustCompile(`(?i)^(?:delete|remove) (?:the )?file (\S+)$`),
		build: func(g []string) dispatch.Request {
			return dispatch.Request{Name: "delete_file", Args: map[string]any{
				"filepath": unquote(g[1]),
			}}
		},
	},
	{
		re: regexp.MustCompile(`(?i)^(?:read|show|open) (?:the )?file (\S+)$`),
		build: func(g []string) dispatch.Request {
			return dispatch.Request{Name: "read_file", Args: map[string]any{
				"filepath": unquote(g[1]),
			}}
		},
	},
	{
		re: regexp.MustCompile(`(?i)^list (?:the )?files(?: in (\S+))?$`),
		build: func(g []string) dispatch.Request {
			args := map[string]any{}
			if g[1] != "" {
				args["directory"] = unquote(g[1])
			}
			return dispatch.Request{Name: "list_files", Args: args}
		},
	},
	{
		re: regexp.MustCompile(`(?i)^(?:(?:change|set) (?:the )?working directory to|cd) (\S+)$`),
		build: func(g []string) dispatch.Request {
			return dispatch.Request{Name: "set_working_directory", Args: map[string]any{
				"directory": unquote(g[1]),
			}}
		},
	},
}

// Parse matches the input against the known phrasings and builds the
// corresponding tool request.
func Parse(input string) (dispatch.Request, error) {
	trimmed := strings.TrimSpace(input)
	for _, p := range patterns {
		if g := p.re.FindStringSubmatch(trimmed); g != nil {
			return p.build(g), nil
		}
	}
	return dispatch.Request{}, ErrNoMatch
}

// Usage lists the supported phrasings for error messages and help output.
func Usage() []string {
	return []string{
		`create file <path> with content <text>`,
		`edit file <path> with content <text>`,
		`delete file <path>`,
		`read file <path>`,
		`list files [in <directory>]`,
		`change working directory to <directory>`,
	}
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
