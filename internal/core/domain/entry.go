package domain

// SchemaVersion is the report format marker understood by downstream
// consumers. Bump only on incompatible schema changes.
const SchemaVersion = "1"

// Metadata is the per-distribution metadata block, passed through opaquely
// from the metadata parser.
type Metadata struct {
	// Name is the distribution name as declared in its metadata.
	Name string `json:"name"`

	// Version is the resolved version string.
	Version string `json:"version"`

	// RequiresDist lists the declared dependency expressions, verbatim.
	RequiresDist []string `json:"requires_dist"`
}

// InstallEntry is one report entry: a single distribution slated for
// installation, with its provenance and request classification. Entries are
// immutable once the compile pass completes.
type InstallEntry struct {
	// Metadata identifies the distribution.
	Metadata Metadata `json:"metadata"`

	// Requested is true iff the entry corresponds to a root requirement the
	// user asked for directly, not a transitive dependency.
	Requested bool `json:"requested"`

	// RequestedExtras lists the extras the user asked for on this entry, in
	// order of first appearance across root requirements. Empty for
	// transitive entries.
	RequestedExtras []string `json:"requested_extras"`

	// IsDirect is true iff the distribution was obtained via an explicit
	// source reference rather than resolved from an index by name+version.
	IsDirect bool `json:"is_direct"`

	// DownloadInfo records how the distribution was (or would be) obtained.
	DownloadInfo DownloadInfo `json:"download_info"`
}

// Report is the compiled installation report document. Field order here is
// the serialization order; it is fixed by the schema, not alphabetical.
type Report struct {
	// Version is the report schema version.
	Version string `json:"version"`

	// Generator names the tool and version that produced the document.
	Generator string `json:"generator"`

	// Install lists one entry per distribution, in the resolver's
	// resolution order.
	Install []InstallEntry `json:"install"`
}
