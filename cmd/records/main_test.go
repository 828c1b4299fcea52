package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/recordsvc/internal/app"
	"github.com/dropDatabas3/recordsvc/internal/config"
)

func startServer(t *testing.T) string {
	t.Helper()
	a, err := app.New(config.Default(), app.Deps{Version: "test"})
	require.NoError(t, err)
	srv := httptest.NewServer(a.Handler)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCLI_CreateGetUpdateDelete(t *testing.T) {
	url := startServer(t)

	out, err := run(t, "--url", url, "--out", "json", "create", "--name", "John", "--last-name", "Doe")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"John","lastName":"Doe"}`, out)

	out, err = run(t, "--url", url, "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Name: John")

	out, err = run(t, "--url", url, "--out", "json", "update", "1", "--last-name", "Dough")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"John","lastName":"Dough"}`, out)

	out, err = run(t, "--url", url, "delete", "1")
	require.NoError(t, err)
	assert.Equal(t, "✅ Record deleted successfully\n", out)

	_, err = run(t, "--url", url, "get", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECORD_NOT_FOUND")
}

func TestCLI_ListAndSearch(t *testing.T) {
	url := startServer(t)

	out, err := run(t, "--url", url, "list")
	require.NoError(t, err)
	assert.Equal(t, "No records found.\n", out)

	_, err = run(t, "--url", url, "create", "--name", "Jane", "--last-name", "Smith")
	require.NoError(t, err)

	out, err = run(t, "--url", url, "--out", "json", "search", "SMI")
	require.NoError(t, err)
	var recs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	assert.Len(t, recs, 1)

	out, err = run(t, "--url", url, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Total records: 1")
}

func TestCLI_Seed(t *testing.T) {
	url := startServer(t)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("records:\n  - name: A\n    lastName: B\n  - name: C\n    lastName: D\n"), 0o600))

	out, err := run(t, "--url", url, "seed", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 records created")
}

func TestCLI_Smoke(t *testing.T) {
	url := startServer(t)

	out, err := run(t, "--url", url, "smoke")
	require.NoError(t, err)
	assert.Contains(t, out, "All checks completed successfully")
}

func TestCLI_BadInput(t *testing.T) {
	_, err := run(t, "get", "abc")
	assert.ErrorContains(t, err, "id inválido")

	_, err = run(t, "--out", "xml", "list")
	assert.ErrorContains(t, err, "--out inválido")

	_, err = run(t, "create", "--name", "John")
	assert.Error(t, err)
}
