package domain

// RootRequirement is one top-level requirement as the user gave it.
type RootRequirement struct {
	// Name is the package name as written by the user; matching against
	// resolved nodes is done on the canonical form.
	Name string

	// Extras lists the extras requested on this requirement, in the order
	// they were written.
	Extras []string

	// Explicit is true when the requirement named an explicit source
	// reference (URL, VCS locator, or path) instead of a name+constraint.
	Explicit bool
}

// ResolvedNode is one node of the resolver's output graph: a concrete
// distribution, its declared dependencies, the fetch layer's origin
// descriptor, and the original requirement that led to it.
type ResolvedNode struct {
	// Name is the distribution name from its metadata.
	Name string

	// Version is the resolved version string.
	Version string

	// RequiresDist lists the declared dependency expressions.
	RequiresDist []string

	// Origin is the fetch/cache descriptor for this node.
	Origin OriginDescriptor

	// Requirement is the original requirement specification. It is threaded
	// alongside the cache descriptor because the cache may not retain the
	// originating reference; reconciliation reads it on VCS cache hits.
	Requirement OriginalRequirement
}

// Resolution is the resolver's complete output for one install: the ordered
// node sequence and the root requirement set. Node order is the resolution
// order and is preserved verbatim in the report.
type Resolution struct {
	Nodes []ResolvedNode
	Roots []RootRequirement
}
