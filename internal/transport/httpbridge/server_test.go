package httpbridge

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/toolshed/internal/adapter"
	"github.com/Cyclone1070/toolshed/internal/config"
	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/logging"
	"github.com/Cyclone1070/toolshed/internal/tool/service/fs"
	"github.com/Cyclone1070/toolshed/internal/tool/service/workdir"
)

func newTestServer(t *testing.T) (*Server, *workdir.State) {
	t.Helper()
	state, err := workdir.New(t.TempDir())
	require.NoError(t, err)
	dispatcher := dispatch.NewDispatcher(adapter.DefaultTools(fs.NewOSFileSystem(), state)...)
	cfg := config.Default()
	return NewServer(cfg, dispatcher, logging.NewDefault("error", false)), state
}

func postTool(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/tool", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCallToolSuccess(t *testing.T) {
	s, state := newTestServer(t)

	rec := postTool(t, s, dispatch.Request{
		Name: "create_file",
		Args: map[string]any{"filepath": "a/b.txt", "content": "hello"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var res dispatch.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Content, 1)
	assert.Equal(t, "text", res.Content[0].Type)
	assert.Equal(t, "Created file: a/b.txt", res.Content[0].Text)

	data, err := os.ReadFile(filepath.Join(state.Get(), "a", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestCallToolFailureIs500(t *testing.T) {
	s, _ := newTestServer(t)

	cases := []struct {
		name string
		req  dispatch.Request
	}{
		{"missing file", dispatch.Request{Name: "read_file", Args: map[string]any{"filepath": "nope.txt"}}},
		{"escape", dispatch.Request{Name: "read_file", Args: map[string]any{"filepath": "../etc/passwd"}}},
		{"unknown tool", dispatch.Request{Name: "rename_file", Args: map[string]any{}}},
		{"missing argument", dispatch.Request{Name: "create_file", Args: map[string]any{"filepath": "f.txt"}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := postTool(t, s, c.req)
			require.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestCallToolMalformedBody(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/tool", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTools(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Tools []dispatch.Declaration `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tools, 6)

	names := make([]string, 0, len(body.Tools))
	for _, d := range body.Tools {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{
		"create_file", "delete_file", "edit_file",
		"list_files", "read_file", "set_working_directory",
	}, names)
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
