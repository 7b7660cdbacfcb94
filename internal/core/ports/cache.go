package ports

import "github.com/phaer/pip/internal/core/domain"

// CacheIndex defines the interface for querying the local wheel/VCS cache.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CacheIndex interface {
	// Lookup reports whether the artifact for the given origin is present in
	// the cache rooted at dir. Returns nil, nil on a miss. On a hit the
	// entry carries the originally recorded remote reference, which for VCS
	// origins must surface in the report instead of any cache-local detail.
	Lookup(dir string, origin domain.OriginDescriptor) (*domain.CacheEntry, error)
}
