package domain

// OriginDescriptor is the raw fetch/cache descriptor supplied by the fetch
// layer for one resolved node. It is the input to provenance classification
// and carries whatever the fetch layer knows about where the distribution
// came from, including cache-local details on a cache hit.
type OriginDescriptor struct {
	// URL is the location the artifact was (or would be) fetched from. For
	// VCS origins it may still carry the "<vcs>+" scheme prefix and a ref
	// fragment; classification strips both.
	URL string

	// VCS is the version control system identifier (e.g. "git"), empty when
	// the origin is not a VCS checkout.
	VCS string

	// RequestedRevision is the revision the requirement asked for (branch,
	// tag, or commit), empty if none was given.
	RequestedRevision string

	// CommitID is the fully resolved revision of a VCS checkout. On a cache
	// hit it may be absent and must then be recovered from the original
	// requirement during reconciliation.
	CommitID string

	// LocalPath is the filesystem path for artifacts that live on disk: a
	// local directory, or a local archive file.
	LocalPath string

	// Editable is true when the install mode requested an editable install
	// for a local directory.
	Editable bool

	// Explicit is true when the original requirement named this origin
	// directly (URL, VCS locator, or path) instead of a name+constraint.
	Explicit bool

	// Hash is a single digest in "<algorithm>=<hexdigest>" form, as computed
	// by the fetch layer. Empty if none was computed.
	Hash string

	// Hashes is the full algorithm-to-hexdigest mapping, when the fetch
	// layer supplied one. Only the index path guarantees it.
	Hashes map[string]string

	// CacheHit is true when the artifact was served from the local cache
	// instead of being fetched fresh.
	CacheHit bool
}

// OriginalRequirement is the requirement as it was first specified, before
// fetching and caching. It outlives the cache: on a VCS cache hit the report
// must name this reference, never a cache-internal one.
type OriginalRequirement struct {
	// VCS is the version control system identifier, empty for non-VCS
	// requirements.
	VCS string

	// RepositoryURL is the remote repository URL, without the "<vcs>+"
	// prefix or ref fragment.
	RepositoryURL string

	// RequestedRevision is the revision the user asked for, if any.
	RequestedRevision string

	// CommitID is the revision the resolver pinned the requirement to.
	CommitID string
}

// CacheEntry records what the wheel cache retained about a cached artifact's
// original remote reference.
type CacheEntry struct {
	// OriginURL is the remote URL the cached artifact was originally built
	// from.
	OriginURL string

	// VCS is the version control system identifier for VCS-built artifacts,
	// empty otherwise.
	VCS string

	// RequestedRevision is the revision originally requested, if any.
	RequestedRevision string

	// CommitID is the resolved revision the cached artifact was built at.
	CommitID string
}
