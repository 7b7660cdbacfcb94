package domain

import "go.trai.ch/zerr"

var (
	// ErrUnclassifiableOrigin is returned when a fetch descriptor matches no
	// known provenance shape. This signals a contract violation by the fetch
	// layer and aborts the whole compile.
	ErrUnclassifiableOrigin = zerr.New("unclassifiable origin")

	// ErrMissingMetadata is returned when a resolved node lacks a usable
	// package name or version. A report cannot describe such a node.
	ErrMissingMetadata = zerr.New("missing metadata")

	// ErrIncompleteProvenance is returned when cache reconciliation cannot
	// recover the original remote reference for a VCS checkout.
	ErrIncompleteProvenance = zerr.New("incomplete provenance")

	// ErrSinkWrite is returned when the report destination cannot be written.
	ErrSinkWrite = zerr.New("sink write failed")

	// ErrEntryCountMismatch is returned when the number of compiled entries
	// does not equal the number of resolver graph nodes.
	ErrEntryCountMismatch = zerr.New("entry count mismatch")

	// ErrRequestedNotRoot is returned when an entry is marked requested but
	// has no matching root requirement.
	ErrRequestedNotRoot = zerr.New("requested entry without root requirement")

	// ErrExplicitNotDirect is returned when a root requirement named an
	// explicit source reference but the matching entry classified as an
	// index origin. The fetch descriptor and the requirement disagree.
	ErrExplicitNotDirect = zerr.New("explicit root requirement resolved from index")

	// ErrSchemaViolation is returned when the compiled document fails
	// validation against the report schema.
	ErrSchemaViolation = zerr.New("report schema violation")
)
