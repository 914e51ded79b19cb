package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karolinacerm/profolio/internal/catalog"
	"github.com/karolinacerm/profolio/internal/view"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>grid</html>"), 0o644))

	s := New(nil, dir)
	s.SetCatalog(catalog.Normalize([]map[string]any{
		{"id": "a", "title": "Alpha", "tags": []any{"print"}},
		{"id": "b", "title": "Beta"},
	}, catalog.Options{}))
	return s
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProjectsList(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/projects")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Count    int             `json:"count"`
		Projects []view.CardView `json:"projects"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Projects, 2)
	assert.Equal(t, "Alpha", body.Projects[0].Title)
	assert.Equal(t, "projects/a/", body.Projects[0].Href)
}

func TestProjectDetail(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	t.Run("found", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/projects/a")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var d view.DetailView
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
		assert.True(t, d.Found)
		assert.Equal(t, "Alpha", d.Title)
		assert.Equal(t, "print", d.Meta)
	})

	t.Run("lookup miss is the not-found view", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/projects/zzz")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		var d view.DetailView
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
		assert.False(t, d.Found)
	})
}

func TestStaticServingNoCache(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get("Cache-Control"))
}

func TestSnapshotSwap(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	s.SetCatalog(catalog.Normalize([]map[string]any{{"id": "only"}}, catalog.Options{}))

	resp, err := http.Get(srv.URL + "/v1/projects")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Count)
}
