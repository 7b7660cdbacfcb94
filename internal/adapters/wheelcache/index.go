// Package wheelcache implements the cache index over an on-disk wheel/VCS
// cache. Each cached artifact has a JSON sidecar entry, keyed by a digest of
// its origin, recording the original remote reference so a cache hit can
// still be reported against the URL it was first fetched from.
package wheelcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/phaer/pip/internal/core/domain"
	"github.com/phaer/pip/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheIndex = (*Index)(nil)

// Index implements ports.CacheIndex over a directory of sidecar entries.
type Index struct{}

// NewIndex creates a new Index.
func NewIndex() *Index {
	return &Index{}
}

// entryDTO is the on-disk shape of one sidecar entry.
type entryDTO struct {
	OriginURL         string `json:"origin_url"`
	VCS               string `json:"vcs,omitempty"`
	RequestedRevision string `json:"requested_revision,omitempty"`
	CommitID          string `json:"commit_id,omitempty"`
}

// Lookup reports whether the artifact for the given origin is cached under
// dir. Returns nil, nil on a miss. Local directories are never cached; they
// are re-read from their live path on every resolve.
func (i *Index) Lookup(dir string, origin domain.OriginDescriptor) (*domain.CacheEntry, error) {
	if dir == "" {
		return nil, nil
	}
	if origin.VCS == "" && origin.LocalPath != "" && !domain.IsArchivePath(origin.LocalPath) {
		return nil, nil
	}

	path := entryPath(dir, origin)
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from a digest under the cache dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read cache entry")
	}

	var dto entryDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal cache entry")
	}

	return &domain.CacheEntry{
		OriginURL:         dto.OriginURL,
		VCS:               dto.VCS,
		RequestedRevision: dto.RequestedRevision,
		CommitID:          dto.CommitID,
	}, nil
}

// Record writes the sidecar entry for an origin. The fetch layer calls this
// when it populates the cache; tests use it to build fixtures.
func (i *Index) Record(dir string, origin domain.OriginDescriptor, entry domain.CacheEntry) error {
	data, err := json.MarshalIndent(entryDTO{
		OriginURL:         entry.OriginURL,
		VCS:               entry.VCS,
		RequestedRevision: entry.RequestedRevision,
		CommitID:          entry.CommitID,
	}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache entry")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	if err := os.WriteFile(entryPath(dir, origin), data, 0o644); err != nil { //nolint:gosec // Sidecar entries are not sensitive
		return zerr.Wrap(err, "failed to write cache entry")
	}
	return nil
}

// entryPath derives the sidecar path for an origin: a 64-bit digest of the
// origin's cache key.
func entryPath(dir string, origin domain.OriginDescriptor) string {
	return filepath.Join(dir, fmt.Sprintf("%016x.json", xxhash.Sum64String(cacheKey(origin))))
}

// cacheKey normalizes an origin to the string the cache is keyed by. VCS
// origins key on the bare repository URL plus the requested revision, so a
// later install of the same reference hits the same entry regardless of how
// the fetch layer spelled the locator.
func cacheKey(origin domain.OriginDescriptor) string {
	switch {
	case origin.VCS != "":
		rev := origin.RequestedRevision
		if rev == "" {
			rev = origin.CommitID
		}
		return origin.VCS + "+" + domain.RepositoryURL(origin.URL, origin.VCS) + "@" + rev
	case origin.LocalPath != "":
		return domain.FileURL(origin.LocalPath)
	default:
		return origin.URL
	}
}
