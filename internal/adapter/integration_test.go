package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/tool/errutil"
	"github.com/Cyclone1070/toolshed/internal/tool/service/fs"
	"github.com/Cyclone1070/toolshed/internal/tool/service/workdir"
)

func newTestDispatcher(t *testing.T) (*dispatch.Dispatcher, *workdir.State) {
	t.Helper()
	state, err := workdir.New(t.TempDir())
	require.NoError(t, err)
	return dispatch.NewDispatcher(DefaultTools(fs.NewOSFileSystem(), state)...), state
}

func call(t *testing.T, d *dispatch.Dispatcher, name string, args map[string]any) (*dispatch.Result, error) {
	t.Helper()
	return d.Dispatch(context.Background(), dispatch.Request{Name: name, Args: args})
}

func text(t *testing.T, res *dispatch.Result) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	require.Equal(t, "text", res.Content[0].Type)
	return res.Content[0].Text
}

func TestFileLifecycle(t *testing.T) {
	d, _ := newTestDispatcher(t)

	res, err := call(t, d, "create_file", map[string]any{"filepath": "a/b.txt", "content": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Created file: a/b.txt", text(t, res))

	res, err = call(t, d, "list_files", map[string]any{"directory": "a"})
	require.NoError(t, err)
	assert.Equal(t, "[FILE] b.txt", text(t, res))

	res, err = call(t, d, "read_file", map[string]any{"filepath": "a/b.txt"})
	require.NoError(t, err)
	assert.Equal(t, "hello", text(t, res))

	res, err = call(t, d, "delete_file", map[string]any{"filepath": "a/b.txt"})
	require.NoError(t, err)
	assert.Equal(t, "Deleted file: a/b.txt", text(t, res))

	_, err = call(t, d, "read_file", map[string]any{"filepath": "a/b.txt"})
	require.ErrorIs(t, err, errutil.ErrNotFound)
}

func TestEditRequiresExistence(t *testing.T) {
	d, _ := newTestDispatcher(t)

	_, err := call(t, d, "edit_file", map[string]any{"filepath": "nope.txt", "content": "x"})
	require.ErrorIs(t, err, errutil.ErrNotFound)

	_, err = call(t, d, "create_file", map[string]any{"filepath": "nope.txt", "content": "first"})
	require.NoError(t, err)

	res, err := call(t, d, "edit_file", map[string]any{"filepath": "nope.txt", "content": "second"})
	require.NoError(t, err)
	assert.Equal(t, "Edited file: nope.txt", text(t, res))

	res, err = call(t, d, "read_file", map[string]any{"filepath": "nope.txt"})
	require.NoError(t, err)
	assert.Equal(t, "second", text(t, res))
}

func TestCreateRoundTripsContent(t *testing.T) {
	d, _ := newTestDispatcher(t)

	for _, content := range []string{"", "hello", "multi\nline\n\ncontent"} {
		_, err := call(t, d, "create_file", map[string]any{"filepath": "f.txt", "content": content})
		require.NoError(t, err)

		res, err := call(t, d, "read_file", map[string]any{"filepath": "f.txt"})
		require.NoError(t, err)
		assert.Equal(t, content, text(t, res))
	}
}

func TestEscapeAttemptsAreRejected(t *testing.T) {
	d, state := newTestDispatcher(t)
	parent := filepath.Dir(state.Get())

	escapes := []struct {
		tool string
		args map[string]any
	}{
		{"create_file", map[string]any{"filepath": "../escape.txt", "content": "x"}},
		{"edit_file", map[string]any{"filepath": "../escape.txt", "content": "x"}},
		{"delete_file", map[string]any{"filepath": "../escape.txt"}},
		{"read_file", map[string]any{"filepath": "../escape.txt"}},
		{"list_files", map[string]any{"directory": ".."}},
		{"read_file", map[string]any{"filepath": "/etc/passwd"}},
	}
	for _, e := range escapes {
		_, err := call(t, d, e.tool, e.args)
		assert.ErrorIs(t, err, errutil.ErrOutsideWorkspace, "tool %s args %v", e.tool, e.args)
	}

	_, err := os.Stat(filepath.Join(parent, "escape.txt"))
	assert.True(t, os.IsNotExist(err), "escape file must never be created")
}

func TestUnknownTool(t *testing.T) {
	d, _ := newTestDispatcher(t)

	_, err := call(t, d, "rename_file", map[string]any{"filepath": "a", "to": "b"})
	require.ErrorIs(t, err, errutil.ErrUnknownTool)
}

func TestMissingRequiredArguments(t *testing.T) {
	d, _ := newTestDispatcher(t)

	cases := []struct {
		tool string
		args map[string]any
	}{
		{"create_file", map[string]any{"filepath": "f.txt"}},
		{"create_file", map[string]any{"content": "x"}},
		{"edit_file", map[string]any{"filepath": "f.txt"}},
		{"delete_file", map[string]any{}},
		{"read_file", nil},
		{"set_working_directory", map[string]any{}},
	}
	for _, c := range cases {
		_, err := call(t, d, c.tool, c.args)
		assert.ErrorIs(t, err, errutil.ErrMissingArgument, "tool %s args %v", c.tool, c.args)
	}
}

func TestEmptyContentIsNotMissing(t *testing.T) {
	d, _ := newTestDispatcher(t)

	// An explicit empty string satisfies the required content argument.
	_, err := call(t, d, "create_file", map[string]any{"filepath": "empty.txt", "content": ""})
	require.NoError(t, err)

	res, err := call(t, d, "read_file", map[string]any{"filepath": "empty.txt"})
	require.NoError(t, err)
	assert.Equal(t, "", text(t, res))
}

func TestListFilesDefaultsToWorkdir(t *testing.T) {
	d, state := newTestDispatcher(t)
	require.NoError(t, os.WriteFile(filepath.Join(state.Get(), "top.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(state.Get(), "sub"), 0o755))

	res, err := call(t, d, "list_files", map[string]any{})
	require.NoError(t, err)
	listing := text(t, res)
	assert.Contains(t, listing, "[FILE] top.txt")
	assert.Contains(t, listing, "[DIR] sub")
}

func TestSetWorkingDirectoryMovesTheSandbox(t *testing.T) {
	d, state := newTestDispatcher(t)
	next := t.TempDir()

	res, err := call(t, d, "set_working_directory", map[string]any{"directory": next})
	require.NoError(t, err)
	assert.Equal(t, "Working directory set to: "+state.Get(), text(t, res))

	// Operations are now confined to the new root.
	_, err = call(t, d, "create_file", map[string]any{"filepath": "here.txt", "content": "hi"})
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(state.Get(), "here.txt"))
	assert.NoError(t, statErr)
}

func TestSetWorkingDirectoryFailureKeepsOldRoot(t *testing.T) {
	d, state := newTestDispatcher(t)
	before := state.Get()
	require.NoError(t, os.WriteFile(filepath.Join(before, "marker.txt"), []byte("x"), 0o644))

	_, err := call(t, d, "set_working_directory", map[string]any{"directory": filepath.Join(before, "missing")})
	require.ErrorIs(t, err, errutil.ErrNotFound)

	res, err := call(t, d, "list_files", map[string]any{})
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "[FILE] marker.txt")

	f := filepath.Join(before, "marker.txt")
	_, err = call(t, d, "set_working_directory", map[string]any{"directory": f})
	require.ErrorIs(t, err, errutil.ErrNotADirectory)
	assert.Equal(t, before, state.Get())
}

func TestArgumentsOfWrongTypeAreRejected(t *testing.T) {
	d, _ := newTestDispatcher(t)

	_, err := call(t, d, "create_file", map[string]any{"filepath": 42, "content": "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, errutil.ErrMissingArgument)
}
