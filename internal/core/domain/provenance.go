package domain

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// ProvenanceKind discriminates the closed set of provenance variants.
type ProvenanceKind string

const (
	// KindArchive covers distributions obtained as an archive, whether
	// resolved from an index or named by an explicit URL/path. The two are
	// structurally identical and distinguished only by the owning entry's
	// IsDirect flag.
	KindArchive ProvenanceKind = "archive"
	// KindVCSCheckout covers distributions obtained from a version control
	// checkout.
	KindVCSCheckout ProvenanceKind = "vcs"
	// KindLocalDirectory covers distributions installed from a live local
	// directory.
	KindLocalDirectory ProvenanceKind = "directory"
)

// ProvenanceInfo is the variant payload of a DownloadInfo. Exactly one
// concrete type backs every value; the interface is sealed so the set stays
// closed and switches over it stay exhaustive.
type ProvenanceInfo interface {
	Kind() ProvenanceKind
	provenance()
}

// ArchiveInfo is the provenance payload for archive origins.
type ArchiveInfo struct {
	// Hash is a single digest in "<algorithm>=<hexdigest>" form.
	Hash string `json:"hash,omitempty"`

	// Hashes maps algorithm names to hexdigests. It is a superset of Hash
	// and may be entirely absent for direct or local archives where only a
	// single ad-hoc digest was computed.
	Hashes map[string]string `json:"hashes,omitempty"`
}

// Kind returns KindArchive.
func (*ArchiveInfo) Kind() ProvenanceKind { return KindArchive }

func (*ArchiveInfo) provenance() {}

// VCSInfo is the provenance payload for version control checkouts.
type VCSInfo struct {
	// VCS is the version control system identifier (e.g. "git").
	VCS string `json:"vcs"`

	// RequestedRevision is the revision the requirement asked for, omitted
	// when the requirement named no revision.
	RequestedRevision string `json:"requested_revision,omitempty"`

	// CommitID is the fully resolved revision.
	CommitID string `json:"commit_id"`
}

// Kind returns KindVCSCheckout.
func (*VCSInfo) Kind() ProvenanceKind { return KindVCSCheckout }

func (*VCSInfo) provenance() {}

// DirInfo is the provenance payload for local directories.
type DirInfo struct {
	// Editable is true when the directory is installed in editable mode.
	Editable bool `json:"editable"`
}

// Kind returns KindLocalDirectory.
func (*DirInfo) Kind() ProvenanceKind { return KindLocalDirectory }

func (*DirInfo) provenance() {}

// DownloadInfo describes how and from where a distribution was (or would be)
// obtained. Exactly one variant payload is present.
type DownloadInfo struct {
	URL  string
	Info ProvenanceInfo
}

// downloadInfoJSON is the wire shape of DownloadInfo. Variant keys are
// mutually exclusive; absent variants are absent, not null.
type downloadInfoJSON struct {
	URL         string       `json:"url"`
	ArchiveInfo *ArchiveInfo `json:"archive_info,omitempty"`
	VCSInfo     *VCSInfo     `json:"vcs_info,omitempty"`
	DirInfo     *DirInfo     `json:"dir_info,omitempty"`
}

// MarshalJSON encodes the variant under its schema key (archive_info,
// vcs_info, or dir_info).
func (d DownloadInfo) MarshalJSON() ([]byte, error) {
	wire := downloadInfoJSON{URL: d.URL}
	switch info := d.Info.(type) {
	case *ArchiveInfo:
		wire.ArchiveInfo = info
	case *VCSInfo:
		wire.VCSInfo = info
	case *DirInfo:
		wire.DirInfo = info
	default:
		return nil, zerr.With(ErrSchemaViolation, "url", d.URL)
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes the variant, rejecting documents that carry zero or
// more than one variant key.
func (d *DownloadInfo) UnmarshalJSON(data []byte) error {
	var wire downloadInfoJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	count := 0
	var info ProvenanceInfo
	if wire.ArchiveInfo != nil {
		count++
		info = wire.ArchiveInfo
	}
	if wire.VCSInfo != nil {
		count++
		info = wire.VCSInfo
	}
	if wire.DirInfo != nil {
		count++
		info = wire.DirInfo
	}
	if count != 1 {
		return zerr.With(ErrSchemaViolation, "url", wire.URL)
	}

	d.URL = wire.URL
	d.Info = info
	return nil
}

// Classify maps a raw origin descriptor to exactly one provenance variant.
// The second return value is the IsDirect flag for the owning entry: true
// for VCS and local-directory origins and for explicitly referenced
// archives, false for archives resolved from an index.
//
// Classification priority: VCS tag, then local directory, then explicit
// archive, then index archive. A descriptor matching none of these is an
// upstream contract violation and yields ErrUnclassifiableOrigin.
func Classify(origin OriginDescriptor) (DownloadInfo, bool, error) {
	switch {
	case origin.VCS != "":
		return DownloadInfo{
			URL: RepositoryURL(origin.URL, origin.VCS),
			Info: &VCSInfo{
				VCS:               origin.VCS,
				RequestedRevision: origin.RequestedRevision,
				CommitID:          origin.CommitID,
			},
		}, true, nil

	case origin.LocalPath != "" && !IsArchivePath(origin.LocalPath):
		return DownloadInfo{
			URL:  FileURL(origin.LocalPath),
			Info: &DirInfo{Editable: origin.Editable},
		}, true, nil

	case origin.LocalPath != "":
		return DownloadInfo{
			URL:  FileURL(origin.LocalPath),
			Info: &ArchiveInfo{Hash: origin.Hash, Hashes: origin.Hashes},
		}, true, nil

	case origin.URL != "":
		return DownloadInfo{
			URL:  origin.URL,
			Info: &ArchiveInfo{Hash: origin.Hash, Hashes: origin.Hashes},
		}, origin.Explicit, nil

	default:
		return DownloadInfo{}, false, zerr.With(ErrUnclassifiableOrigin, "local_path", origin.LocalPath)
	}
}

// archiveExtensions are the filename suffixes recognized as distribution
// archives. A local path without one of these is a directory install.
var archiveExtensions = []string{
	".whl", ".zip", ".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".txz", ".tar",
}

// IsArchivePath reports whether a local path names a distribution archive
// rather than a directory install.
func IsArchivePath(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range archiveExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// FileURL converts a filesystem path to a file:// URL.
func FileURL(path string) string {
	return "file://" + filepath.ToSlash(path)
}

// RepositoryURL normalizes a VCS locator to the bare repository URL: the
// "<vcs>+" scheme prefix, the "@<revision>" suffix, and any "#egg=" style
// fragment are stripped.
func RepositoryURL(raw, vcs string) string {
	if vcs != "" {
		raw = strings.TrimPrefix(raw, vcs+"+")
	}
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	// Only strip an "@" that revs the final path segment; "git@host" style
	// user info sits before the last slash and stays intact.
	if at := strings.LastIndexByte(raw, '@'); at > strings.LastIndexByte(raw, '/') {
		raw = raw[:at]
	}
	return raw
}
