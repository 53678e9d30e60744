package prompt

import (
	"errors"
	"testing"

	"github.com/Cyclone1070/toolshed/internal/dispatch"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  dispatch.Request
	}{
		{
			name:  "create with content",
			input: "create file notes.txt with content hello world",
			want: dispatch.Request{Name: "create_file", Args: map[string]any{
				"filepath": "notes.txt", "content": "hello world",
			}},
		},
		{
			name:  "create with article and quoted content",
			input: `create a new file called a/b.txt with content "line one"`,
			want: dispatch.Request{Name: "create_file", Args: map[string]any{
				"filepath": "a/b.txt", "content": "line one",
			}},
		},
		{
			name:  "edit",
			input: "edit file notes.txt with new content goodbye",
			want: dispatch.Request{Name: "edit_file", Args: map[string]any{
				"filepath": "notes.txt", "content": "goodbye",
			}},
		},
		{
			name:  "update phrasing maps to edit",
			input: "update the file cfg.json with content {}",
			want: dispatch.Request{Name: "edit_file", Args: map[string]any{
				"filepath": "cfg.json", "content": "{}",
			}},
		},
		{
			name:  "delete",
			input: "delete file old.txt",
			want:  dispatch.Request{Name: "delete_file", Args: map[string]any{"filepath": "old.txt"}},
		},
		{
			name:  "remove phrasing maps to delete",
			input: "remove the file old.txt",
			want:  dispatch.Request{Name: "delete_file", Args: map[string]any{"filepath": "old.txt"}},
		},
		{
			name:  "read",
			input: "read file notes.txt",
			want:  dispatch.Request{Name: "read_file", Args: map[string]any{"filepath": "notes.txt"}},
		},
		{
			name:  "show phrasing maps to read",
			input: "show the file notes.txt",
			want:  dispatch.Request{Name: "read_file", Args: map[string]any{"filepath": "notes.txt"}},
		},
		{
			name:  "list without directory",
			input: "list files",
			want:  dispatch.Request{Name: "list_files", Args: map[string]any{}},
		},
		{
			name:  "list with directory",
			input: "list the files in src",
			want:  dispatch.Request{Name: "list_files", Args: map[string]any{"directory": "src"}},
		},
		{
			name:  "change working directory",
			input: "change working directory to /tmp/ws",
			want:  dispatch.Request{Name: "set_working_directory", Args: map[string]any{"directory": "/tmp/ws"}},
		},
		{
			name:  "cd shorthand",
			input: "cd projects",
			want:  dispatch.Request{Name: "set_working_directory", Args: map[string]any{"directory": "projects"}},
		},
		{
			name:  "case insensitive with padding",
			input: "  Read File NOTES.txt  ",
			want:  dispatch.Request{Name: "read_file", Args: map[string]any{"filepath": "NOTES.txt"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != tt.want.Name {
				t.Fatalf("expected tool %q, got %q", tt.want.Name, got.Name)
			}
			if len(got.Args) != len(tt.want.Args) {
				t.Fatalf("expected args %v, got %v", tt.want.Args, got.Args)
			}
			for k, v := range tt.want.Args {
				if got.Args[k] != v {
					t.Errorf("arg %q: expected %v, got %v", k, v, got.Args[k])
				}
			}
		})
	}
}

func TestParseNoMatch(t *testing.T) {
	inputs := []string{
		"",
		"make me a sandwich",
		"create file",
		"delete",
	}
	for _, input := range inputs {
		if _, err := Parse(input); !errors.Is(err, ErrNoMatch) {
			t.Errorf("input %q: expected ErrNoMatch, got %v", input, err)
		}
	}
}
