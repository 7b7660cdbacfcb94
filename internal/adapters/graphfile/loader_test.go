package graphfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phaer/pip/internal/adapters/graphfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResolution(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resolution.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeResolution(t, `
version: "1"
roots:
  - name: require-simple
    extras: [dev]
  - name: pip-test-package
    explicit: true
install:
  - name: require_simple
    version: "1.0"
    requires_dist: ["simple"]
    origin:
      url: https://files.example.org/require_simple-1.0-py3-none-any.whl
      hash: sha256=ab12cd34
      hashes:
        sha256: ab12cd34
  - name: pip-test-package
    version: "0.1.1"
    origin:
      url: git+https://github.com/pypa/pip-test-package
      vcs: git
      cache_hit: true
    requirement:
      vcs: git
      repository_url: https://github.com/pypa/pip-test-package
      commit_id: e2b8c2e5c8e91f3e0f35a0a5e0f2d9c6b1a4d7e8
`)

	res, err := graphfile.Load(path)
	require.NoError(t, err)

	require.Len(t, res.Roots, 2)
	assert.Equal(t, "require-simple", res.Roots[0].Name)
	assert.Equal(t, []string{"dev"}, res.Roots[0].Extras)
	assert.True(t, res.Roots[1].Explicit)

	require.Len(t, res.Nodes, 2)
	assert.Equal(t, "require_simple", res.Nodes[0].Name)
	assert.Equal(t, []string{"simple"}, res.Nodes[0].RequiresDist)
	assert.Equal(t, "sha256=ab12cd34", res.Nodes[0].Origin.Hash)

	assert.Equal(t, "git", res.Nodes[1].Origin.VCS)
	assert.True(t, res.Nodes[1].Origin.CacheHit)
	assert.Equal(t, "https://github.com/pypa/pip-test-package", res.Nodes[1].Requirement.RepositoryURL)
	assert.Equal(t, "e2b8c2e5c8e91f3e0f35a0a5e0f2d9c6b1a4d7e8", res.Nodes[1].Requirement.CommitID)
}

func TestLoad_PreservesNodeOrder(t *testing.T) {
	path := writeResolution(t, `
version: "1"
roots:
  - name: c
install:
  - name: c
    version: "1.0"
    origin: {url: "https://example.org/c.whl"}
  - name: a
    version: "1.0"
    origin: {url: "https://example.org/a.whl"}
  - name: b
    version: "1.0"
    origin: {url: "https://example.org/b.whl"}
`)

	res, err := graphfile.Load(path)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Nodes))
	for _, node := range res.Nodes {
		names = append(names, node.Name)
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	path := writeResolution(t, `
version: "2"
install: []
`)

	_, err := graphfile.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported resolution file version")
}

func TestLoad_RootWithoutName(t *testing.T) {
	path := writeResolution(t, `
version: "1"
roots:
  - extras: [dev]
install: []
`)

	_, err := graphfile.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root requirement without a name")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := graphfile.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeResolution(t, "version: [unclosed")
	_, err := graphfile.Load(path)
	require.Error(t, err)
}
