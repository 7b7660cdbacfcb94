package wheelcache_test

import (
	"testing"

	"github.com/phaer/pip/internal/adapters/wheelcache"
	"github.com/phaer/pip/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_RecordLookup(t *testing.T) {
	dir := t.TempDir()
	index := wheelcache.NewIndex()

	origin := domain.OriginDescriptor{
		URL:               "git+https://github.com/pypa/pip-test-package@0.1.1",
		VCS:               "git",
		RequestedRevision: "0.1.1",
	}
	entry := domain.CacheEntry{
		OriginURL:         "https://github.com/pypa/pip-test-package",
		VCS:               "git",
		RequestedRevision: "0.1.1",
		CommitID:          "e2b8c2e5c8e91f3e0f35a0a5e0f2d9c6b1a4d7e8",
	}

	require.NoError(t, index.Record(dir, origin, entry))

	got, err := index.Lookup(dir, origin)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry, *got)
}

func TestIndex_VCSKeyIgnoresLocatorSpelling(t *testing.T) {
	dir := t.TempDir()
	index := wheelcache.NewIndex()

	recorded := domain.OriginDescriptor{
		URL:               "git+https://github.com/pypa/pip-test-package@0.1.1#egg=pip-test-package",
		VCS:               "git",
		RequestedRevision: "0.1.1",
	}
	entry := domain.CacheEntry{
		OriginURL: "https://github.com/pypa/pip-test-package",
		VCS:       "git",
		CommitID:  "e2b8c2e5c8e91f3e0f35a0a5e0f2d9c6b1a4d7e8",
	}
	require.NoError(t, index.Record(dir, recorded, entry))

	// Same reference, different locator spelling.
	looked := domain.OriginDescriptor{
		URL:               "https://github.com/pypa/pip-test-package",
		VCS:               "git",
		RequestedRevision: "0.1.1",
	}
	got, err := index.Lookup(dir, looked)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.CommitID, got.CommitID)
}

func TestIndex_Miss(t *testing.T) {
	index := wheelcache.NewIndex()

	got, err := index.Lookup(t.TempDir(), domain.OriginDescriptor{
		URL: "https://files.example.org/simple-3.0-py3-none-any.whl",
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIndex_EmptyDirIsAlwaysMiss(t *testing.T) {
	index := wheelcache.NewIndex()

	got, err := index.Lookup("", domain.OriginDescriptor{URL: "https://example.org/a.whl"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIndex_LocalDirectoryNeverCached(t *testing.T) {
	dir := t.TempDir()
	index := wheelcache.NewIndex()

	origin := domain.OriginDescriptor{LocalPath: "/tmp/src/localpkg"}
	require.NoError(t, index.Record(dir, origin, domain.CacheEntry{OriginURL: "file:///tmp/src/localpkg"}))

	got, err := index.Lookup(dir, origin)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIndex_LocalArchiveIsCacheable(t *testing.T) {
	dir := t.TempDir()
	index := wheelcache.NewIndex()

	origin := domain.OriginDescriptor{LocalPath: "/tmp/dist/localpkg-1.0.tar.gz"}
	entry := domain.CacheEntry{OriginURL: "file:///tmp/dist/localpkg-1.0.tar.gz"}
	require.NoError(t, index.Record(dir, origin, entry))

	got, err := index.Lookup(dir, origin)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.OriginURL, got.OriginURL)
}
